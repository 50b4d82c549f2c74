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

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{
			name: "clean_json",
			raw:  `{"score": 0.8, "reason": "solid answer"}`,
			want: 0.8,
		},
		{
			name: "json_with_leading_commentary",
			raw:  "Sure, here is my evaluation:\n{\"score\": 0.55, \"reason\": \"partially correct\"}\nHope that helps!",
			want: 0.55,
		},
		{
			name: "ten_scale_drift_corrected",
			raw:  `{"score": 7, "reason": "good"}`,
			want: 0.7,
		},
		{
			name: "boundary_one_not_rescaled",
			raw:  `{"score": 1.0}`,
			want: 1.0,
		},
		{
			name: "zero_score",
			raw:  `{"score": 0}`,
			want: 0.0,
		},
		{
			name: "percent_scale_rejected",
			raw:  `{"score": 95}`,
			want: Unavailable,
		},
		{
			name: "negative_rejected",
			raw:  `{"score": -3}`,
			want: Unavailable,
		},
		{
			name: "string_encoded_score",
			raw:  `{"score": "0.8", "reason": "solid answer"}`,
			want: 0.8,
		},
		{
			name: "string_score_beats_number_in_reason",
			raw:  `{"score": "0.6", "reason": "a top 3 answer"}`,
			want: 0.6,
		},
		{
			name: "string_ten_scale_corrected",
			raw:  `{"score": "7"}`,
			want: 0.7,
		},
		{
			name: "unparseable_string_score_falls_back",
			raw:  `{"score": "high"} I would call it a 6`,
			want: 0.6,
		},
		{
			name: "no_json_bare_number_fallback",
			raw:  "I would rate this answer an 8 out of 10.",
			want: 0.8,
		},
		{
			name: "no_json_decimal_fallback",
			raw:  "confidence is about 0.4 overall",
			want: 0.4,
		},
		{
			name: "malformed_json_falls_back_to_scan",
			raw:  `{"score": oops} but call it a 6`,
			want: 0.6,
		},
		{
			name: "json_missing_score_field_falls_back",
			raw:  `{"rating": "fine"} somewhere around 5`,
			want: 0.5,
		},
		{
			name: "nothing_recoverable",
			raw:  "the candidate did well, no complaints",
			want: Unavailable,
		},
		{
			name: "empty",
			raw:  "",
			want: Unavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseScore(tt.raw); got != tt.want {
				t.Errorf("ParseScore(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Verdict
	}{
		{
			name: "score_with_flags",
			raw:  `{"score": 0.6, "flags": ["blame-shifting", "vague on outcome"]}`,
			want: Verdict{Score: 0.6, Flags: []string{"blame-shifting", "vague on outcome"}},
		},
		{
			name: "clean_record",
			raw:  `{"score": 1.0, "flags": []}`,
			want: Verdict{Score: 1.0, Flags: []string{}},
		},
		{
			name: "ten_scale_flags_kept",
			raw:  `{"score": 9, "flags": ["minor exaggeration"]}`,
			want: Verdict{Score: 0.9, Flags: []string{"minor exaggeration"}},
		},
		{
			name: "string_encoded_score_flags_kept",
			raw:  `{"score": "0.4", "flags": ["deflects ownership"]}`,
			want: Verdict{Score: 0.4, Flags: []string{"deflects ownership"}},
		},
		{
			name: "missing_flags_field",
			raw:  `{"score": 0.75}`,
			want: Verdict{Score: 0.75, Flags: []string{}},
		},
		{
			name: "no_json_number_fallback_drops_flags",
			raw:  "Overall I would score this 7, with some avoidance.",
			want: Verdict{Score: 0.7, Flags: []string{}},
		},
		{
			name: "out_of_contract_score",
			raw:  `{"score": 120, "flags": ["x"]}`,
			want: Verdict{Score: Unavailable, Flags: []string{}},
		},
		{
			name: "nothing_recoverable",
			raw:  "could not possibly say",
			want: Verdict{Score: Unavailable, Flags: []string{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseVerdict(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseVerdict(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestPrompts(t *testing.T) {
	user := AccuracyUserPrompt("What is a mutex?", "A lock.", "USER: hi\nASSISTANT: hello")
	for _, want := range []string{"QUESTION: What is a mutex?", "ANSWER: A lock.", "Conversation so far", "ASSISTANT: hello"} {
		if !strings.Contains(user, want) {
			t.Errorf("AccuracyUserPrompt missing %q in:\n%s", want, user)
		}
	}

	bare := RedFlagUserPrompt("Q", "A", "")
	if strings.Contains(bare, "Full conversation") {
		t.Errorf("RedFlagUserPrompt with empty history should omit the history block:\n%s", bare)
	}
}
