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

package lexical

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple",
			text: "I built the pipeline",
			want: []string{"I", "built", "the", "pipeline"},
		},
		{
			name: "punctuation_stripped",
			text: "latency: 40ms, roughly.",
			want: []string{"latency", "40ms", "roughly"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "whitespace_only",
			text: "   \t\n",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokens(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokens(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "three_sentences",
			text: "First one. Second one! Third one?",
			want: []string{"First one", "Second one", "Third one"},
		},
		{
			name: "no_terminal_punctuation_is_one_sentence",
			text: "a single trailing thought",
			want: []string{"a single trailing thought"},
		},
		{
			name: "punctuation_runs_collapse",
			text: "Really?! Yes...",
			want: []string{"Really", "Yes"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Sentences(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestRawSentenceCount(t *testing.T) {
	// The raw count keeps empty fragments: an empty string is one fragment
	// and a trailing period produces one more.
	if got := RawSentenceCount(""); got != 1 {
		t.Errorf("RawSentenceCount(\"\") = %d, want 1", got)
	}
	if got := RawSentenceCount("Done. Next."); got != 3 {
		t.Errorf("RawSentenceCount = %d, want 3", got)
	}
}

func TestCategoryCounts(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		text     string
		want     int
	}{
		{"hedge_multiple", Hedge, "Maybe it works. I think it could be fine.", 3},
		{"hedge_case_insensitive", Hedge, "PROBABLY so", 1},
		{"hedge_none", Hedge, "It works.", 0},
		{"causal", Causal, "We sharded because load doubled, so that reads stayed fast.", 2},
		{"example", Example, "For example, we implemented retries, specifically with jitter.", 3},
		{"quantity_with_unit", Quantity, "Throughput hit 10000 requests within 200 ms.", 2},
		{"quantity_multiplier", Quantity, "We handled 3x the load.", 1},
		{"quantity_needs_unit", Quantity, "There were 42 of them.", 0},
		{"shallow", Shallow, "I worked on it with the team. It was fine.", 2},
		{"action_first_person_only", Action, "I built the cache. The cache was built.", 1},
		{"passive", Passive, "The service was implemented quickly and it was decided to stop.", 2},
		{"tech", Tech, "We run Kafka on Kubernetes backed by Postgres.", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.category, tt.text); got != tt.want {
				t.Errorf("Count(%v, %q) = %d, want %d", tt.category, tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchesTech(t *testing.T) {
	got := Matches(Tech, "Kafka feeds Redis, and redis feeds the dashboard")
	want := []string{"Kafka", "Redis", "redis"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Matches(Tech) mismatch (-want +got):\n%s", diff)
	}
}

func TestNumberMentions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"bare_and_suffixed", "We cut costs by 20 and latency by 40ms", 2},
		{"decimal", "error rate fell to 0.5", 1},
		{"none", "no figures here", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(NumberMentions(tt.text)); got != tt.want {
				t.Errorf("NumberMentions(%q) count = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestSTARPresence(t *testing.T) {
	full := "The project was behind. I was responsible for delivery. I implemented the fix. As a result we reduced churn."
	got := STARPresence(full)
	for _, comp := range STARComponents {
		if !got[comp] {
			t.Errorf("STARPresence: component %q missing, want present", comp)
		}
	}

	empty := STARPresence("nothing to see")
	for _, comp := range STARComponents {
		if empty[comp] {
			t.Errorf("STARPresence: component %q present, want missing", comp)
		}
	}
}
