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

	"github.com/Saad-Manda/SkillIssue.ai/judge"
)

// FactualAccuracyScore asks the LLM judge whether technical claims are
// correct and the reasoning logically sound, with a bounded window of recent
// turns as context. Returns Unavailable when no critic is configured, the
// call fails, or no score can be parsed; it never returns an error.
func (e *Engine) FactualAccuracyScore(ctx context.Context, question, answer string, history []Turn) float64 {
	raw, ok := e.critique(ctx, judge.AccuracySystemPrompt,
		judge.AccuracyUserPrompt(question, answer, HistoryText(history, e.judgeWindow)))
	if !ok {
		return Unavailable
	}
	return judge.ParseScore(raw)
}

// RedFlagScore asks the LLM judge to detect blame-shifting, avoidance,
// contradiction with prior turns, or implausible exaggeration, with the full
// conversation as context. Returns {Unavailable, []} when no critic is
// configured or the call fails; it never returns an error.
func (e *Engine) RedFlagScore(ctx context.Context, question, answer string, history []Turn) judge.Verdict {
	raw, ok := e.critique(ctx, judge.RedFlagSystemPrompt,
		judge.RedFlagUserPrompt(question, answer, HistoryText(history, 0)))
	if !ok {
		return judge.Verdict{Score: Unavailable, Flags: []string{}}
	}
	return judge.ParseVerdict(raw)
}

// critique runs the critic, treating a missing critic or any call failure
// as unavailability rather than an error.
func (e *Engine) critique(ctx context.Context, system, user string) (string, bool) {
	if e.critic == nil {
		return "", false
	}
	raw, err := e.critic.Critique(ctx, system, user)
	if err != nil {
		return "", false
	}
	return raw, true
}
