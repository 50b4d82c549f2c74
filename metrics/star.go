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

import "github.com/Saad-Manda/SkillIssue.ai/internal/lexical"

// STARResult reports Situation-Task-Action-Result structure detection.
type STARResult struct {
	// Turn is the fraction of components present in the current answer.
	Turn float64

	// Cumulative is the fraction of components present across all prior
	// answers plus the current one; STAR may span multiple turns. The
	// cumulative check always covers the full conversation, never a
	// window. Without history it equals Turn.
	Cumulative float64

	// Components maps each component name to its presence in the current
	// answer alone.
	Components map[string]bool
}

// STARScore detects STAR structure in the current answer and cumulatively
// across the conversation. Purely lexical; it cannot fail.
func (e *Engine) STARScore(question, answer string, history []Turn) STARResult {
	turnPresence := lexical.STARPresence(answer)

	cumPresence := turnPresence
	if len(history) > 0 {
		cumPresence = lexical.STARPresence(PriorAnswers(history) + " " + answer)
	}

	components := make(map[string]bool, len(turnPresence))
	for comp, present := range turnPresence {
		components[string(comp)] = present
	}

	return STARResult{
		Turn:       round4(presenceFraction(turnPresence)),
		Cumulative: round4(presenceFraction(cumPresence)),
		Components: components,
	}
}

func presenceFraction(presence map[lexical.STARComponent]bool) float64 {
	present := 0
	for _, ok := range presence {
		if ok {
			present++
		}
	}
	return float64(present) / float64(len(lexical.STARComponents))
}
