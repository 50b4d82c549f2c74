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

// Package embedding defines the embedding capability used by the turn
// metrics engine: mapping text to a fixed-length, L2-normalized vector and
// comparing vectors by cosine similarity.
//
// Implementations must be deterministic for a fixed (text, model version)
// pair. Backends are interchangeable: a remote Gemini provider, a
// deterministic hashing provider for offline/degraded operation, and an LRU
// cache decorator over any provider.
package embedding

import (
	"context"
	"math"
)

// Provider maps text to L2-normalized embedding vectors.
//
// Embedding calls may fail (provider unavailable, rate limited, network
// error). Providers do not retry; errors propagate to the caller.
type Provider interface {
	// Embed returns the normalized embedding vector for text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch returns one normalized vector per input text, in input
	// order. Batching must not change any vector relative to Embed.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Cosine returns the cosine similarity of a and b in [-1, 1]. Vectors are
// expected to be L2-normalized, so this reduces to a dot product; if either
// vector has zero norm the similarity is 0.0.
func Cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	for i := n; i < len(a); i++ {
		na += float64(a[i]) * float64(a[i])
	}
	for i := n; i < len(b); i++ {
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Normalize L2-normalizes v in place and returns it. A zero vector is
// returned unchanged.
func Normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return v
	}
	inv := 1.0 / math.Sqrt(sum)
	for i := range v {
		v[i] = float32(float64(v[i]) * inv)
	}
	return v
}
