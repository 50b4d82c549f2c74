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

package judge

import "fmt"

// AccuracySystemPrompt instructs the judge to score factual accuracy and
// reasoning quality of an interview answer on a 0-1 scale, JSON only.
const AccuracySystemPrompt = `You are an expert technical interviewer. Evaluate the factual accuracy and logical correctness of the answer. Are technical claims correct? Is the reasoning coherent and free of contradictions? Does the candidate show an accurate mental model? Respond ONLY with this JSON (no extra text): {"score": <float 0.0-1.0>, "reason": "<one sentence>"}`

// RedFlagSystemPrompt instructs the judge to detect interview warning signs
// and report a score plus flag descriptions, JSON only.
const RedFlagSystemPrompt = `You are an experienced interviewer watching for warning signs. Identify any red flags: blaming teammates/management without personal responsibility, refusing to discuss a failure, contradicting something said earlier, obvious exaggeration or implausible claims, completely avoiding the question. Respond ONLY with this JSON: {"score": <float 0.0-1.0 where 1.0 = zero red flags>, "flags": [<short flag descriptions or empty list>]}`

// AccuracyUserPrompt builds the user payload for the accuracy judge.
// historyText is a role-tagged window of recent turns, or "" for none.
func AccuracyUserPrompt(question, answer, historyText string) string {
	return userPrompt(question, answer, historyText, "Conversation so far")
}

// RedFlagUserPrompt builds the user payload for the red-flag judge.
// historyText is the full role-tagged conversation, or "" for none.
func RedFlagUserPrompt(question, answer, historyText string) string {
	return userPrompt(question, answer, historyText, "Full conversation")
}

func userPrompt(question, answer, historyText, historyLabel string) string {
	block := ""
	if historyText != "" {
		block = fmt.Sprintf("\n\n%s:\n%s", historyLabel, historyText)
	}
	return fmt.Sprintf("%s\n\nQUESTION: %s\nANSWER: %s", block, question, answer)
}
