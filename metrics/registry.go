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
	"sort"
	"sync"
)

// ScorerFunc computes one metric for a turn. The returned value is a
// float64 score for the numeric metrics, a map[string]bool for
// STAR_components, or a []string for RFD_flags.
type ScorerFunc func(ctx context.Context, e *Engine, question, answer string, history []Turn) (any, error)

// Registry maps metric types to scorer functions so callers can run named
// subsets of the metric set.
type Registry struct {
	mu      sync.RWMutex
	scorers map[MetricType]ScorerFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{scorers: make(map[MetricType]ScorerFunc)}
}

// Register registers a scorer for a metric type.
func (r *Registry) Register(metricType MetricType, scorer ScorerFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.scorers[metricType]; exists {
		return fmt.Errorf("metrics: scorer already registered for %s", metricType)
	}
	r.scorers[metricType] = scorer
	return nil
}

// Get retrieves the scorer for a metric type.
func (r *Registry) Get(metricType MetricType) (ScorerFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scorer, exists := r.scorers[metricType]
	if !exists {
		return nil, fmt.Errorf("metrics: no scorer registered for %s", metricType)
	}
	return scorer, nil
}

// Score runs the scorer registered for a metric type.
func (r *Registry) Score(ctx context.Context, metricType MetricType, e *Engine, question, answer string, history []Turn) (any, error) {
	scorer, err := r.Get(metricType)
	if err != nil {
		return nil, err
	}
	return scorer(ctx, e, question, answer, history)
}

// ListMetrics returns the registered metric types in stable order.
func (r *Registry) ListMetrics() []MetricType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	metrics := make([]MetricType, 0, len(r.scorers))
	for metricType := range r.scorers {
		metrics = append(metrics, metricType)
	}
	sort.Slice(metrics, func(i, j int) bool { return metrics[i] < metrics[j] })
	return metrics
}

// IsRegistered checks whether a scorer exists for a metric type.
func (r *Registry) IsRegistered(metricType MetricType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.scorers[metricType]
	return exists
}

// DefaultRegistry holds the built-in scorers for every metric type.
var DefaultRegistry = NewRegistry()

func init() {
	builtins := map[MetricType]ScorerFunc{
		MetricQAR: func(ctx context.Context, e *Engine, q, a string, h []Turn) (any, error) {
			return e.QuestionAnswerRelevance(ctx, q, a, h)
		},
		MetricTDS: func(ctx context.Context, e *Engine, q, a string, h []Turn) (any, error) {
			return e.TopicalDepthScore(ctx, q, a, h)
		},
		MetricACS: func(ctx context.Context, e *Engine, q, a string, h []Turn) (any, error) {
			return e.AnswerCompletenessScore(ctx, q, a, h)
		},
		MetricSS: func(ctx context.Context, e *Engine, q, a string, h []Turn) (any, error) {
			return e.SpecificityScore(ctx, q, a, h)
		},
		MetricCCS: func(ctx context.Context, e *Engine, q, a string, h []Turn) (any, error) {
			return e.ConfidenceClarityScore(ctx, q, a, h)
		},
		MetricSTARTurn: func(_ context.Context, e *Engine, q, a string, h []Turn) (any, error) {
			return e.STARScore(q, a, h).Turn, nil
		},
		MetricSTARCumulative: func(_ context.Context, e *Engine, q, a string, h []Turn) (any, error) {
			return e.STARScore(q, a, h).Cumulative, nil
		},
		MetricSTARComponents: func(_ context.Context, e *Engine, q, a string, h []Turn) (any, error) {
			return e.STARScore(q, a, h).Components, nil
		},
		MetricFARQ: func(ctx context.Context, e *Engine, q, a string, h []Turn) (any, error) {
			return e.FactualAccuracyScore(ctx, q, a, h), nil
		},
		MetricRFD: func(ctx context.Context, e *Engine, q, a string, h []Turn) (any, error) {
			return e.RedFlagScore(ctx, q, a, h).Score, nil
		},
		MetricRFDFlags: func(ctx context.Context, e *Engine, q, a string, h []Turn) (any, error) {
			return e.RedFlagScore(ctx, q, a, h).Flags, nil
		},
	}
	for metricType, scorer := range builtins {
		if err := DefaultRegistry.Register(metricType, scorer); err != nil {
			panic(err)
		}
	}
}
