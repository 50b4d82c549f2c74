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

import (
	"context"
	"errors"
	"math"

	"github.com/Saad-Manda/SkillIssue.ai/embedding"
	"github.com/Saad-Manda/SkillIssue.ai/judge"
)

// DefaultJudgeWindow is the number of recent turns included as context for
// the factual-accuracy judge.
const DefaultJudgeWindow = 4

// Config configures a metrics Engine.
type Config struct {
	// Embedder is the embedding provider. Required: the local metrics
	// depend on it and its failures propagate as errors.
	Embedder embedding.Provider

	// Critic is the LLM judge. Optional: when nil the judge metrics
	// surface the Unavailable sentinel instead of failing.
	Critic judge.Critic

	// JudgeWindow bounds the history context for the accuracy judge.
	// Zero means DefaultJudgeWindow.
	JudgeWindow int
}

// Engine computes the full turn metric set. It holds no mutable state
// between calls, so one Engine may score concurrent sessions.
type Engine struct {
	embedder    embedding.Provider
	critic      judge.Critic
	judgeWindow int
}

// NewEngine creates an Engine from cfg.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Embedder == nil {
		return nil, errors.New("metrics: embedder is required")
	}
	window := cfg.JudgeWindow
	if window <= 0 {
		window = DefaultJudgeWindow
	}
	return &Engine{
		embedder:    cfg.Embedder,
		critic:      cfg.Critic,
		judgeWindow: window,
	}, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0.0), 1.0)
}

func (e *Engine) embed(ctx context.Context, text string) ([]float32, error) {
	return e.embedder.Embed(ctx, text)
}
