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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

var _ Provider = (*Gemini)(nil)

// Gemini embeds text with a Gemini embedding model via the genai API.
// Vectors are L2-normalized before being returned. Results are deterministic
// for a fixed (text, model version).
type Gemini struct {
	client *genai.Client
	model  string
	tracer trace.Tracer
}

// NewGemini creates a Gemini embedding provider for the given model name.
func NewGemini(ctx context.Context, model string, cfg *genai.ClientConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: create genai client: %w", err)
	}
	return &Gemini{
		client: client,
		model:  model,
		tracer: otel.Tracer("github.com/Saad-Manda/SkillIssue.ai/embedding"),
	}, nil
}

// Embed returns the normalized embedding vector for text.
func (g *Gemini) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := g.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch embeds all texts in a single API call, preserving input order.
func (g *Gemini) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	ctx, span := g.tracer.Start(ctx, "embedding.EmbedBatch", trace.WithAttributes(
		attribute.String("embedding.model", g.model),
		attribute.Int("embedding.batch_size", len(texts)),
	))
	defer span.End()

	contents := make([]*genai.Content, len(texts))
	for i, t := range texts {
		contents[i] = genai.NewContentFromText(t, genai.RoleUser)
	}

	resp, err := g.client.Models.EmbedContent(ctx, g.model, contents, nil)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("embedding: embed content: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		err := fmt.Errorf("embedding: got %d vectors for %d texts", len(resp.Embeddings), len(texts))
		span.RecordError(err)
		return nil, err
	}

	vecs := make([][]float32, len(texts))
	for i, e := range resp.Embeddings {
		vecs[i] = Normalize(e.Values)
	}
	return vecs, nil
}
