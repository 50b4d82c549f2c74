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

import "strings"

// PriorAnswers concatenates all responder content in the history,
// space-joined in turn order. Empty history yields "".
func PriorAnswers(history []Turn) string {
	return joinByRole(history, Role.IsAnswer)
}

// PriorQuestions concatenates all questioner content in the history,
// space-joined in turn order. Empty history yields "".
func PriorQuestions(history []Turn) string {
	return joinByRole(history, Role.IsQuestion)
}

func joinByRole(history []Turn, match func(Role) bool) string {
	var parts []string
	for _, t := range history {
		if match(t.Role) {
			parts = append(parts, t.Content)
		}
	}
	return strings.Join(parts, " ")
}

// HistoryText renders the last lastN turns as role-tagged lines
// ("ROLE: content"), newline-joined, bounding the context sent to the LLM
// critic. lastN <= 0 renders the full history. Empty history yields "".
func HistoryText(history []Turn, lastN int) string {
	if len(history) == 0 {
		return ""
	}
	window := history
	if lastN > 0 && len(history) > lastN {
		window = history[len(history)-lastN:]
	}
	lines := make([]string, len(window))
	for i, t := range window {
		lines[i] = strings.ToUpper(string(t.Role)) + ": " + t.Content
	}
	return strings.Join(lines, "\n")
}
