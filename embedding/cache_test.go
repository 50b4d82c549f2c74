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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// countingProvider wraps Hashing and counts how many texts reach the
// underlying provider.
type countingProvider struct {
	inner    *Hashing
	embedded int
	fail     bool
}

func (p *countingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if p.fail {
		return nil, errors.New("provider down")
	}
	p.embedded++
	return p.inner.Embed(ctx, text)
}

func (p *countingProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if p.fail {
		return nil, errors.New("provider down")
	}
	p.embedded += len(texts)
	return p.inner.EmbedBatch(ctx, texts)
}

func TestCachedEmbedHitsCache(t *testing.T) {
	inner := &countingProvider{inner: NewHashing()}
	cached, err := NewCached(inner, 16)
	if err != nil {
		t.Fatalf("NewCached: %v", err)
	}
	ctx := context.Background()

	first, err := cached.Embed(ctx, "the answer text")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	second, err := cached.Embed(ctx, "the answer text")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	if inner.embedded != 1 {
		t.Errorf("inner embeds = %d, want 1", inner.embedded)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached vector differs (-first +second):\n%s", diff)
	}
}

func TestCachedEmbedBatchOnlyEmbedsMisses(t *testing.T) {
	inner := &countingProvider{inner: NewHashing()}
	cached, err := NewCached(inner, 16)
	if err != nil {
		t.Fatalf("NewCached: %v", err)
	}
	ctx := context.Background()

	if _, err := cached.Embed(ctx, "warm"); err != nil {
		t.Fatalf("Embed: %v", err)
	}

	// "warm" is cached; "cold" is repeated and should embed once.
	vecs, err := cached.EmbedBatch(ctx, []string{"warm", "cold", "cold", "other"})
	if err != nil {
		t.Fatalf("EmbedBatch: %v", err)
	}
	if inner.embedded != 3 { // warm + {cold, other}
		t.Errorf("inner embeds = %d, want 3", inner.embedded)
	}

	want, _ := NewHashing().EmbedBatch(ctx, []string{"warm", "cold", "cold", "other"})
	if diff := cmp.Diff(want, vecs); diff != "" {
		t.Errorf("EmbedBatch mismatch (-want +got):\n%s", diff)
	}
}

func TestCachedPropagatesErrors(t *testing.T) {
	inner := &countingProvider{inner: NewHashing(), fail: true}
	cached, err := NewCached(inner, 16)
	if err != nil {
		t.Fatalf("NewCached: %v", err)
	}

	if _, err := cached.Embed(context.Background(), "anything"); err == nil {
		t.Error("Embed: want error from failing provider, got nil")
	}
	if _, err := cached.EmbedBatch(context.Background(), []string{"a", "b"}); err == nil {
		t.Error("EmbedBatch: want error from failing provider, got nil")
	}
}
