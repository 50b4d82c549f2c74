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
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Saad-Manda/SkillIssue.ai/embedding"
	"github.com/Saad-Manda/SkillIssue.ai/internal/lexical"
)

// QuestionAnswerRelevance scores the semantic similarity between question
// and answer. With history it blends in how well the answer bridges the
// ongoing thread: 0.75 direct similarity + 0.25 bridge similarity.
func (e *Engine) QuestionAnswerRelevance(ctx context.Context, question, answer string, history []Turn) (float64, error) {
	qv, err := e.embed(ctx, question)
	if err != nil {
		return 0, fmt.Errorf("QAR: embed question: %w", err)
	}
	av, err := e.embed(ctx, answer)
	if err != nil {
		return 0, fmt.Errorf("QAR: embed answer: %w", err)
	}
	score := embedding.Cosine(qv, av)

	if len(history) > 0 {
		ctxText := PriorAnswers(history) + " " + PriorQuestions(history)
		cv, err := e.embed(ctx, ctxText)
		if err != nil {
			return 0, fmt.Errorf("QAR: embed history: %w", err)
		}
		bridge := embedding.Cosine(av, cv)
		score = 0.75*score + 0.25*bridge
	}

	return round4(clamp01(score)), nil
}

// TopicalDepthScore rewards causal reasoning, concrete examples, and
// quantified claims, and penalizes shallow filler. With history it blends in
// an embedding-novelty bonus for genuinely new content.
func (e *Engine) TopicalDepthScore(ctx context.Context, question, answer string, history []Turn) (float64, error) {
	total := float64(max(lexical.WordCount(answer), 1))

	causalDensity := float64(lexical.Count(lexical.Causal, answer)) / total
	exampleDensity := float64(lexical.Count(lexical.Example, answer)) / total
	quantityDensity := float64(lexical.Count(lexical.Quantity, answer)) / total
	shallowHits := float64(lexical.Count(lexical.Shallow, answer))

	base := 0.35*math.Min(causalDensity*25, 1.0) +
		0.35*math.Min(exampleDensity*25, 1.0) +
		0.30*math.Min(quantityDensity*15, 1.0)
	base = math.Max(base-shallowHits*0.12, 0.0)

	if len(history) > 0 {
		prior := PriorAnswers(history)
		if strings.TrimSpace(prior) != "" {
			av, err := e.embed(ctx, answer)
			if err != nil {
				return 0, fmt.Errorf("TDS: embed answer: %w", err)
			}
			pv, err := e.embed(ctx, prior)
			if err != nil {
				return 0, fmt.Errorf("TDS: embed prior answers: %w", err)
			}
			novelty := 1.0 - embedding.Cosine(av, pv)
			base = 0.80*base + 0.20*novelty
		}
	}

	return round4(math.Min(base, 1.0)), nil
}

// AnswerCompletenessScore scores the fraction of answer sentences that are
// semantically on-topic plus length adequacy. With history it discounts
// answers that are mostly redundant with prior turns.
func (e *Engine) AnswerCompletenessScore(ctx context.Context, question, answer string, history []Turn) (float64, error) {
	sentences := lexical.Sentences(answer)
	if len(sentences) == 0 {
		return 0.0, nil
	}

	qv, err := e.embed(ctx, question)
	if err != nil {
		return 0, fmt.Errorf("ACS: embed question: %w", err)
	}

	// Sentence embeddings run concurrently; indexed writes keep the result
	// identical to the sequential computation.
	vecs := make([][]float32, len(sentences))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, s := range sentences {
		g.Go(func() error {
			v, err := e.embed(gctx, s)
			if err != nil {
				return fmt.Errorf("ACS: embed sentence %d: %w", i, err)
			}
			vecs[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	onTopic := 0
	for _, v := range vecs {
		if embedding.Cosine(v, qv) > 0.10 {
			onTopic++
		}
	}
	onTopicFrac := float64(onTopic) / float64(len(sentences))

	wordCount := lexical.WordCount(answer)
	lengthScore := math.Min(float64(wordCount)/80, 1.0)

	score := 0.60*onTopicFrac + 0.40*lengthScore

	if len(history) > 0 {
		prior := PriorAnswers(history)
		if strings.TrimSpace(prior) != "" {
			av, err := e.embed(ctx, answer)
			if err != nil {
				return 0, fmt.Errorf("ACS: embed answer: %w", err)
			}
			pv, err := e.embed(ctx, prior)
			if err != nil {
				return 0, fmt.Errorf("ACS: embed prior answers: %w", err)
			}
			redundancy := embedding.Cosine(av, pv)
			score *= 1.0 - 0.25*redundancy
		}
	}

	return round4(clamp01(score)), nil
}

// SpecificityScore rewards named technologies and quantified claims.
// Technologies already mentioned in prior answers count at 0.3 weight,
// giving diminishing returns for repetition.
func (e *Engine) SpecificityScore(_ context.Context, question, answer string, history []Turn) (float64, error) {
	total := float64(max(lexical.WordCount(answer), 1))
	numbers := lexical.NumberMentions(answer)

	var tools []string
	for _, t := range lexical.Matches(lexical.Tech, answer) {
		tools = append(tools, strings.ToLower(t))
	}

	toolCount := float64(len(tools))
	if len(history) > 0 {
		priorTools := make(map[string]bool)
		for _, t := range lexical.Matches(lexical.Tech, PriorAnswers(history)) {
			priorTools[strings.ToLower(t)] = true
		}
		newTools := 0
		for _, t := range tools {
			if !priorTools[t] {
				newTools++
			}
		}
		toolCount = float64(newTools) + 0.3*float64(len(tools)-newTools)
	}

	toolScore := math.Min(toolCount/math.Max(total*0.08, 1), 1.0)
	numberScore := math.Min(float64(len(numbers))/math.Max(total*0.05, 1), 1.0)

	return round4(0.55*toolScore + 0.45*numberScore), nil
}

// ConfidenceClarityScore rewards assertive first-person ownership and
// penalizes hedging and passive voice. With history the penalty compounds
// for a sustained pattern of uncertainty across prior answers.
func (e *Engine) ConfidenceClarityScore(_ context.Context, question, answer string, history []Turn) (float64, error) {
	totalSentences := float64(max(len(lexical.Sentences(answer)), 1))

	hedgeRate := float64(lexical.Count(lexical.Hedge, answer)) / totalSentences
	passiveRate := float64(lexical.Count(lexical.Passive, answer)) / totalSentences
	actionRate := float64(lexical.Count(lexical.Action, answer)) / totalSentences

	score := math.Max(1.0-hedgeRate*0.25-passiveRate*0.15, 0.0)
	score = math.Min(score+math.Min(actionRate*0.20, 0.30), 1.0)

	if len(history) > 0 {
		prior := PriorAnswers(history)
		priorSentences := float64(max(lexical.RawSentenceCount(prior), 1))
		priorHedgeRate := float64(lexical.Count(lexical.Hedge, prior)) / priorSentences
		score *= 1.0 - 0.15*priorHedgeRate
	}

	return round4(clamp01(score)), nil
}
