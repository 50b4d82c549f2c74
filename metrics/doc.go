// Copyright 2025 The SkillIssue.ai Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics scores free-text interview answers along independent
// dimensions to drive an automated interview-practice pipeline.
//
// The engine converts a (question, answer, prior-turn history) triple into a
// flat mapping of metric name to bounded score, using a blend of lexical
// pattern analysis, embedding similarity, and an external LLM judge.
//
// # Metric Set
//
// Local metrics (embedding + lexical, failures propagate as errors):
//   - QAR: question-answer relevance (0.0-1.0)
//   - TDS: topical depth (0.0-1.0)
//   - ACS: answer completeness (0.0-1.0)
//   - SS: specificity (0.0-1.0)
//   - CCS: confidence and clarity (0.0-1.0)
//
// Behavioral-phase metrics (lexical STAR structure detection):
//   - STAR_turn, STAR_cumulative (0.0-1.0), STAR_components (presence map)
//
// LLM-judged metrics (best-effort, -1.0 sentinel when unavailable):
//   - FARQ: factual accuracy and reasoning quality
//   - RFD: red-flag detection, with RFD_flags descriptions
//
// # Usage
//
//	embedder, err := embedding.NewGemini(ctx, "text-embedding-004", nil)
//	if err != nil { ... }
//	engine, err := metrics.NewEngine(metrics.Config{Embedder: embedder})
//	if err != nil { ... }
//
//	m, err := engine.CalculateTurnMetrics(ctx, question, answer, history,
//	    metrics.Options{BehavioralPhase: true, RunLLMMetrics: true})
//
// The history passed to a metric call holds the turns prior to the one being
// scored; the current pair is never included. A computed Metrics record is
// never mutated by the engine; persisting it is the caller's concern.
//
// The engine holds no cross-call state, so a single Engine can score
// concurrent sessions. An offline degraded mode is available by constructing
// the engine with embedding.NewHashing, which approximates similarity by
// token overlap without any network dependency.
package metrics
