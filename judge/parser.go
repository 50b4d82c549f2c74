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
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unavailable is the sentinel returned when no usable score can be recovered
// from the judge output. It must never be confused with a valid low score;
// callers branch on sign before interpreting magnitude.
const Unavailable = -1.0

var (
	// jsonBlockRE captures the first '{' through the last '}' of the raw
	// text, tolerating commentary the judge was told not to produce.
	jsonBlockRE = regexp.MustCompile(`(?s)\{.*\}`)

	numberRE = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
)

// Verdict is the normalized result of a judge call.
type Verdict struct {
	// Score is in [0, 1], or Unavailable.
	Score float64 `json:"score"`

	// Flags lists short judge-reported issue descriptions. Empty when the
	// judge reported none or was unavailable.
	Flags []string `json:"flags"`
}

// ParseScore recovers a score in [0, 1] from raw judge output.
//
// The judge is instructed to answer with a bare JSON object carrying a
// "score" field on a 0-1 scale. Defensively, a value in (1, 10] is treated
// as a 0-10 scale and divided by 10; values outside [0, 10] are rejected as
// scale drift the contract does not cover. If no JSON object parses, the raw
// text is scanned for any standalone number in [0, 10] and the same
// normalization applies. Returns Unavailable when nothing can be recovered.
func ParseScore(raw string) float64 {
	if block := jsonBlockRE.FindString(raw); block != "" {
		var obj map[string]any
		if err := json.Unmarshal([]byte(block), &obj); err == nil {
			if v, ok := numericField(obj, "score"); ok {
				if s, ok := normalizeScale(v); ok {
					return s
				}
				return Unavailable
			}
		}
	}
	for _, m := range numberRE.FindAllString(raw, -1) {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		if s, ok := normalizeScale(v); ok {
			return s
		}
	}
	return Unavailable
}

// ParseVerdict recovers a score plus flag list from raw judge output. When
// the JSON contract cannot be parsed it falls back to ParseScore with an
// empty flag list.
func ParseVerdict(raw string) Verdict {
	if block := jsonBlockRE.FindString(raw); block != "" {
		var obj map[string]any
		if err := json.Unmarshal([]byte(block), &obj); err == nil {
			if v, ok := numericField(obj, "score"); ok {
				if s, ok := normalizeScale(v); ok {
					return Verdict{Score: s, Flags: stringList(obj["flags"])}
				}
				return Verdict{Score: Unavailable, Flags: []string{}}
			}
		}
	}
	return Verdict{Score: ParseScore(raw), Flags: []string{}}
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// normalizeScale maps a judge value onto [0, 1]. Values in (1, 10] are
// assumed to be on a 0-10 scale. Anything outside [0, 10] is rejected.
func normalizeScale(v float64) (float64, bool) {
	if v < 0 || v > 10 {
		return 0, false
	}
	if v > 1 {
		v /= 10
	}
	return round4(v), true
}

// numericField reads a numeric member, accepting models that quote the
// value as a string.
func numericField(obj map[string]any, field string) (float64, bool) {
	switch v := obj[field].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
