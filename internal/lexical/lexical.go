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

// Package lexical provides the fixed library of lexical classifiers used by
// the turn metrics engine: word tokenization, sentence splitting, and
// regex-based category counts (hedging, causal connectives, example markers,
// quantity mentions, shallow filler, named technologies, assertive action
// verbs, passive constructions, and the four STAR component vocabularies).
//
// All functions are pure: no side effects, no network calls, no randomness.
// The pattern set is versioned via PatternVersion; changing any pattern
// changes metric semantics and requires a version bump.
package lexical

import (
	"regexp"
	"strings"
)

// PatternVersion identifies the current revision of the category pattern set.
const PatternVersion = "v1"

var (
	wordRE     = regexp.MustCompile(`\b\w+\b`)
	sentenceRE = regexp.MustCompile(`[.!?]+`)
)

// Tokens returns the word tokens of text.
func Tokens(text string) []string {
	return wordRE.FindAllString(text, -1)
}

// WordCount returns the number of word tokens in text.
func WordCount(text string) int {
	return len(wordRE.FindAllString(text, -1))
}

// Sentences splits text on runs of terminal punctuation, trims the fragments,
// and drops empty ones. Text with no terminal punctuation is one sentence.
func Sentences(text string) []string {
	var out []string
	for _, s := range sentenceRE.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// RawSentenceCount returns the number of fragments produced by the sentence
// split without trimming or dropping empties. Used where the scoring formula
// counts fragments rather than sentences.
func RawSentenceCount(text string) int {
	return len(sentenceRE.Split(text, -1))
}

// Category identifies one lexical classifier in the fixed pattern library.
type Category int

const (
	// Hedge matches uncertainty language ("maybe", "i think", "not sure").
	Hedge Category = iota
	// Causal matches causal connectives ("because", "as a result").
	Causal
	// Example matches concrete-example markers ("for example", "such as").
	Example
	// Quantity matches number+unit mentions ("40 percent", "200 ms").
	Quantity
	// Shallow matches low-content filler ("it was fine", "did some stuff").
	Shallow
	// Tech matches named technologies ("kafka", "kubernetes", "postgres").
	Tech
	// Action matches first-person assertive action verbs ("i built").
	Action
	// Passive matches passive constructions ("was implemented").
	Passive
)

var categoryRE = map[Category]*regexp.Regexp{
	Hedge: regexp.MustCompile(`(?i)\b(maybe|probably|i think|not sure|possibly|i believe|might be|` +
		`could be|i guess|sort of|kind of|i suppose|i'm not certain)\b`),

	Causal: regexp.MustCompile(`(?i)\b(because|therefore|thus|hence|as a result|which caused|leading to|` +
		`which meant|so that|in order to)\b`),

	Example: regexp.MustCompile(`(?i)\b(for example|for instance|such as|specifically|in particular|` +
		`to illustrate|in my project|we implemented|concretely)\b`),

	Quantity: regexp.MustCompile(`(?i)\b\d+\s*(%|x|times|ms|seconds|minutes|hours|gb|mb|tb|requests|users|percent|k|m)\b`),

	Shallow: regexp.MustCompile(`(?i)\b(i worked on it|it was fine|did some stuff|helped with|was involved in|` +
		`i know about|i have experience|i've done that|we just used)\b`),

	Tech: regexp.MustCompile(`(?i)\b(python|java|javascript|typescript|go|rust|c\+\+|kotlin|swift|scala|` +
		`docker|kubernetes|aws|gcp|azure|terraform|ansible|helm|` +
		`react|vue|angular|nextjs|svelte|fastapi|django|flask|spring|rails|` +
		`sql|postgres|mysql|mongodb|redis|kafka|rabbitmq|elasticsearch|cassandra|` +
		`tensorflow|pytorch|scikit|huggingface|spark|airflow|dbt|` +
		`graphql|grpc|rest|websocket|nginx|linux|git|ci/cd|jenkins|github.actions|` +
		`prometheus|grafana|datadog|sentry|opentelemetry)\b`),

	Action: regexp.MustCompile(`(?i)\b(i (built|designed|led|created|implemented|deployed|developed|wrote|` +
		`refactored|migrated|optimised|introduced|reduced|automated|coordinated|` +
		`negotiated|owned|drove|shipped|launched|established|mentored|scaled))\b`),

	Passive: regexp.MustCompile(`(?i)\b(was done|was built|was implemented|was developed|were created|` +
		`it was decided|things were set up|stuff was)\b`),
}

// Count returns the number of matches of category c in text.
func Count(c Category, text string) int {
	return len(categoryRE[c].FindAllString(text, -1))
}

// Matches returns the matched substrings of category c in text, in order.
func Matches(c Category, text string) []string {
	return categoryRE[c].FindAllString(text, -1)
}

// numberRE matches bare numbers with an optional compact unit suffix.
// Broader than Quantity: it also accepts unadorned figures.
var numberRE = regexp.MustCompile(`\b\d+(?:\.\d+)?(?:%|x|ms|gb|mb|k|m)?\b`)

// NumberMentions returns the numeric mentions found in text. Matching is
// performed on the lowercased text so unit suffixes are case-insensitive.
func NumberMentions(text string) []string {
	return numberRE.FindAllString(strings.ToLower(text), -1)
}

// STARComponent names one component of the Situation-Task-Action-Result
// behavioral answer structure.
type STARComponent string

const (
	STARSituation STARComponent = "situation"
	STARTask      STARComponent = "task"
	STARAction    STARComponent = "action"
	STARResult    STARComponent = "result"
)

// STARComponents lists the four components in canonical order.
var STARComponents = []STARComponent{STARSituation, STARTask, STARAction, STARResult}

var starRE = map[STARComponent]*regexp.Regexp{
	STARSituation: regexp.MustCompile(`(?i)\b(project|situation|challenge|context|background|scenario|at the time|` +
		`problem we faced|the issue was)\b`),
	STARTask: regexp.MustCompile(`(?i)\b(task|responsible for|goal|objective|assigned to|my role was|` +
		`i was asked to|needed to|requirement was)\b`),
	STARAction: categoryRE[Action],
	STARResult: regexp.MustCompile(`(?i)\b(result|improved|increased|reduced|achieved|delivered|outcome|impact|` +
		`saved|cut|boosted|grew|shipped|launched|decreased|eliminated)\b`),
}

// STARPresence reports which STAR components appear in text.
func STARPresence(text string) map[STARComponent]bool {
	out := make(map[STARComponent]bool, len(starRE))
	for comp, re := range starRE {
		out[comp] = re.MatchString(text)
	}
	return out
}
