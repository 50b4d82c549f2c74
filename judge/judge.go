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

// Package judge provides the LLM-critic capability used by the qualitative
// turn metrics: a single Critic interface, a Gemini-backed adapter, and a
// parser that recovers a bounded score from the judge's free-form output.
//
// The judge is best-effort. Callers treat any failure as "unavailable" and
// surface the sentinel score rather than an error; this deliberately differs
// from the embedding provider, which is a required dependency.
package judge

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

// ErrUnavailable indicates no judge credential is configured.
var ErrUnavailable = errors.New("judge: unavailable")

// Critic sends a system/user prompt pair to an external judge model and
// returns the raw textual response.
type Critic interface {
	Critique(ctx context.Context, system, user string) (string, error)
}

var (
	availOnce sync.Once
	avail     bool
)

// Available reports whether a judge credential is configured in the
// environment. The check is cached for the process lifetime; credentials do
// not change at runtime.
func Available() bool {
	availOnce.Do(func() {
		avail = os.Getenv("GOOGLE_API_KEY") != "" || os.Getenv("GEMINI_API_KEY") != ""
	})
	return avail
}

var _ Critic = (*Gemini)(nil)

// Gemini is a Critic backed by a Gemini model via the genai API.
type Gemini struct {
	client      *genai.Client
	model       string
	temperature *float32
	tracer      trace.Tracer
}

// GeminiConfig configures the Gemini critic.
type GeminiConfig struct {
	// Model is the judge model name, e.g. "gemini-2.0-flash".
	Model string

	// Temperature overrides the generation temperature when non-nil.
	// Judges typically run at 0 for reproducibility.
	Temperature *float32

	// Client configures the underlying genai client. May be nil, in which
	// case credentials are read from the environment.
	Client *genai.ClientConfig
}

// NewGemini creates a Gemini critic. It returns ErrUnavailable when no
// credential is configured, letting callers skip judge metrics up front
// without a network round-trip.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if (cfg.Client == nil || cfg.Client.APIKey == "") && !Available() {
		return nil, ErrUnavailable
	}
	client, err := genai.NewClient(ctx, cfg.Client)
	if err != nil {
		return nil, fmt.Errorf("judge: create genai client: %w", err)
	}
	return &Gemini{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		tracer:      otel.Tracer("github.com/Saad-Manda/SkillIssue.ai/judge"),
	}, nil
}

// Critique sends the system instruction and user payload to the judge model
// and returns the raw response text.
func (g *Gemini) Critique(ctx context.Context, system, user string) (string, error) {
	ctx, span := g.tracer.Start(ctx, "judge.Critique", trace.WithAttributes(
		attribute.String("judge.model", g.model),
	))
	defer span.End()

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, "system"),
	}
	if g.temperature != nil {
		config.Temperature = g.temperature
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), config)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("judge: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		err := errors.New("judge: empty response")
		span.RecordError(err)
		return "", err
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		text += part.Text
	}
	if text == "" {
		err := errors.New("judge: response contains no text")
		span.RecordError(err)
		return "", err
	}
	return text, nil
}
