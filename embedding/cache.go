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

package embedding

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 4096

var _ Provider = (*Cached)(nil)

// Cached decorates a Provider with an LRU cache keyed by the exact text.
// Providers are deterministic for a fixed model version, so cached vectors
// never go stale within a process. Safe for concurrent use.
type Cached struct {
	inner Provider
	cache *lru.Cache[string, []float32]
}

// NewCached wraps inner with an LRU cache of at most size entries.
func NewCached(inner Provider, size int) (*Cached, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, []float32](size)
	if err != nil {
		return nil, fmt.Errorf("embedding: create cache: %w", err)
	}
	return &Cached{inner: inner, cache: cache}, nil
}

// Embed returns the cached vector for text, embedding on miss.
func (c *Cached) Embed(ctx context.Context, text string) ([]float32, error) {
	if v, ok := c.cache.Get(text); ok {
		return v, nil
	}
	v, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	c.cache.Add(text, v)
	return v, nil
}

// EmbedBatch serves cached entries and embeds only the misses, preserving
// input order. A repeated text inside one batch is embedded once.
func (c *Cached) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	var missTexts []string
	var missIdx []int
	seen := make(map[string]int)

	for i, t := range texts {
		if v, ok := c.cache.Get(t); ok {
			vecs[i] = v
			continue
		}
		if _, dup := seen[t]; !dup {
			seen[t] = len(missTexts)
			missTexts = append(missTexts, t)
		}
		missIdx = append(missIdx, i)
	}
	if len(missTexts) == 0 {
		return vecs, nil
	}

	fresh, err := c.inner.EmbedBatch(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	for _, i := range missIdx {
		v := fresh[seen[texts[i]]]
		vecs[i] = v
		c.cache.Add(texts[i], v)
	}
	return vecs, nil
}
