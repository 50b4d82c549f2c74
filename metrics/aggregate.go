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

package metrics

import "context"

// Options selects which metric groups CalculateTurnMetrics computes.
type Options struct {
	// BehavioralPhase enables the STAR metrics. Set during behavioral
	// interview phases.
	BehavioralPhase bool

	// RunLLMMetrics enables the judge metrics (FARQ, RFD). Leave false
	// for fast or offline evaluation.
	RunLLMMetrics bool
}

// CalculateTurnMetrics computes all metrics for the current interview turn.
//
// history holds the turns prior to this one, oldest first; pass nil or an
// empty slice for a first turn — the two are equivalent. Failures of the
// local embedding-backed metrics propagate as an error; unavailability of
// the LLM judge does not, surfacing as the Unavailable sentinel instead.
func (e *Engine) CalculateTurnMetrics(ctx context.Context, question, answer string, history []Turn, opts Options) (Metrics, error) {
	m := Metrics{}

	qar, err := e.QuestionAnswerRelevance(ctx, question, answer, history)
	if err != nil {
		return nil, err
	}
	m[MetricQAR] = qar

	tds, err := e.TopicalDepthScore(ctx, question, answer, history)
	if err != nil {
		return nil, err
	}
	m[MetricTDS] = tds

	acs, err := e.AnswerCompletenessScore(ctx, question, answer, history)
	if err != nil {
		return nil, err
	}
	m[MetricACS] = acs

	ss, err := e.SpecificityScore(ctx, question, answer, history)
	if err != nil {
		return nil, err
	}
	m[MetricSS] = ss

	ccs, err := e.ConfidenceClarityScore(ctx, question, answer, history)
	if err != nil {
		return nil, err
	}
	m[MetricCCS] = ccs

	if opts.BehavioralPhase {
		star := e.STARScore(question, answer, history)
		m[MetricSTARTurn] = star.Turn
		m[MetricSTARCumulative] = star.Cumulative
		m[MetricSTARComponents] = star.Components
	}

	if opts.RunLLMMetrics {
		m[MetricFARQ] = e.FactualAccuracyScore(ctx, question, answer, history)
		rfd := e.RedFlagScore(ctx, question, answer, history)
		m[MetricRFD] = rfd.Score
		m[MetricRFDFlags] = rfd.Flags
	}

	return m, nil
}
