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
	"hash/fnv"
	"strings"

	"github.com/Saad-Manda/SkillIssue.ai/internal/lexical"
)

// DefaultHashingDim is the vector length used by NewHashing.
const DefaultHashingDim = 256

var _ Provider = (*Hashing)(nil)

// Hashing is a dependency-free embedding provider that hashes word tokens
// into a fixed-length bag-of-words vector. Cosine similarity between hashed
// vectors approximates token overlap, which makes this the degraded offline
// mode of the engine and the deterministic stub used in tests.
//
// It never fails and requires no network or model weights.
type Hashing struct {
	dim int
}

// NewHashing creates a hashing provider with the default dimension.
func NewHashing() *Hashing {
	return &Hashing{dim: DefaultHashingDim}
}

// NewHashingDim creates a hashing provider with vector length dim.
func NewHashingDim(dim int) *Hashing {
	if dim <= 0 {
		dim = DefaultHashingDim
	}
	return &Hashing{dim: dim}
}

// Embed returns the normalized hashed bag-of-words vector for text.
func (h *Hashing) Embed(_ context.Context, text string) ([]float32, error) {
	v := make([]float32, h.dim)
	for _, tok := range lexical.Tokens(strings.ToLower(text)) {
		f := fnv.New32a()
		f.Write([]byte(tok))
		v[f.Sum32()%uint32(h.dim)]++
	}
	return Normalize(v), nil
}

// EmbedBatch embeds each text independently, preserving input order.
func (h *Hashing) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := h.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		vecs[i] = v
	}
	return vecs, nil
}
