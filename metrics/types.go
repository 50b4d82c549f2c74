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

// Role tags a conversation turn as a question or an answer.
type Role string

const (
	// RoleUser marks a questioner turn.
	RoleUser Role = "user"
	// RoleQuestioner is an accepted alias for RoleUser.
	RoleQuestioner Role = "questioner"
	// RoleAssistant marks a responder turn.
	RoleAssistant Role = "assistant"
	// RoleResponder is an accepted alias for RoleAssistant.
	RoleResponder Role = "responder"
)

// IsQuestion reports whether the role belongs to the questioner side.
func (r Role) IsQuestion() bool {
	return r == RoleUser || r == RoleQuestioner
}

// IsAnswer reports whether the role belongs to the responder side.
func (r Role) IsAnswer() bool {
	return r == RoleAssistant || r == RoleResponder
}

// Turn is one utterance in a conversation, immutable once recorded. A
// history is an ordered sequence of Turns, oldest first, containing only the
// turns strictly prior to the turn being scored.
type Turn struct {
	Role    Role   `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// MetricType identifies one turn metric.
type MetricType string

const (
	// MetricQAR scores question-answer relevance: embedding similarity of
	// the answer to the question, blended with a bridge similarity to the
	// prior conversation when history is present.
	// Score: 0.0 - 1.0
	MetricQAR MetricType = "QAR"

	// MetricTDS scores topical depth: causal reasoning, concrete examples,
	// and quantified claims, minus a shallow-filler penalty, with an
	// embedding-novelty bonus against prior answers.
	// Score: 0.0 - 1.0
	MetricTDS MetricType = "TDS"

	// MetricACS scores answer completeness: fraction of on-topic sentences
	// plus length adequacy, discounted for redundancy with prior turns.
	// Score: 0.0 - 1.0
	MetricACS MetricType = "ACS"

	// MetricSS scores specificity: named technologies and quantified
	// claims, with diminishing returns for repeated mentions.
	// Score: 0.0 - 1.0
	MetricSS MetricType = "SS"

	// MetricCCS scores confidence and clarity: assertive first-person
	// ownership against hedging and passive voice, compounded by a
	// sustained-hedging pattern across the conversation.
	// Score: 0.0 - 1.0
	MetricCCS MetricType = "CCS"

	// MetricSTARTurn scores Situation-Task-Action-Result structure in the
	// current answer: the fraction of the four components present.
	// Score: 0.0 - 1.0, behavioral phases only.
	MetricSTARTurn MetricType = "STAR_turn"

	// MetricSTARCumulative scores STAR structure across all prior answers
	// plus the current one; STAR may span multiple turns.
	// Score: 0.0 - 1.0, behavioral phases only.
	MetricSTARCumulative MetricType = "STAR_cumulative"

	// MetricSTARComponents reports per-component presence in the current
	// answer as a map of component name to bool.
	MetricSTARComponents MetricType = "STAR_components"

	// MetricFARQ scores factual accuracy and reasoning quality via the LLM
	// judge. Score: 0.0 - 1.0, or -1.0 when the judge is unavailable.
	MetricFARQ MetricType = "FARQ"

	// MetricRFD scores absence of interview red flags via the LLM judge.
	// Score: 0.0 (many red flags) - 1.0 (none), or -1.0 when unavailable.
	MetricRFD MetricType = "RFD"

	// MetricRFDFlags carries the judge's red-flag descriptions as a
	// string slice, empty when none were reported or the judge was
	// unavailable.
	MetricRFDFlags MetricType = "RFD_flags"
)

// String returns the string representation of the metric type.
func (m MetricType) String() string {
	return string(m)
}

// IsLLMJudged reports whether the metric depends on the external judge and
// may therefore carry the Unavailable sentinel.
func (m MetricType) IsLLMJudged() bool {
	switch m {
	case MetricFARQ, MetricRFD, MetricRFDFlags:
		return true
	default:
		return false
	}
}

// IsBehavioral reports whether the metric is computed only during
// behavioral interview phases.
func (m MetricType) IsBehavioral() bool {
	switch m {
	case MetricSTARTurn, MetricSTARCumulative, MetricSTARComponents:
		return true
	default:
		return false
	}
}

// AllMetrics lists every metric type this engine can produce.
func AllMetrics() []MetricType {
	return []MetricType{
		MetricQAR,
		MetricTDS,
		MetricACS,
		MetricSS,
		MetricCCS,
		MetricSTARTurn,
		MetricSTARCumulative,
		MetricSTARComponents,
		MetricFARQ,
		MetricRFD,
		MetricRFDFlags,
	}
}

// Unavailable is the sentinel value of LLM-judged metrics when the judge is
// not configured or its call failed. It is a value, not an error: callers
// must treat it as "no signal" and never average it into valid scores.
const Unavailable = -1.0

// Metrics maps metric types to their computed values for one turn: a
// float64 in [0, 1], the Unavailable sentinel, a component-presence map
// (STAR_components), or a flag list (RFD_flags). Computed fresh per turn and
// never mutated by the engine; persisting it is the caller's concern.
type Metrics map[MetricType]any

// Score returns the float value of a numeric metric. ok is false when the
// metric is absent or not numeric.
func (m Metrics) Score(t MetricType) (float64, bool) {
	v, present := m[t]
	if !present {
		return 0, false
	}
	f, isFloat := v.(float64)
	return f, isFloat
}
