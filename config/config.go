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

// Package config loads the engine configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all turn-metrics engine settings. Loaded once at startup and
// read-only thereafter.
type Config struct {
	// GoogleAPIKey authenticates the Gemini judge and embedding backends.
	// Empty means the judge is unavailable and, unless Degraded is set,
	// embedding falls back to the hashing provider.
	GoogleAPIKey string `envconfig:"GOOGLE_API_KEY"`

	// GeminiAPIKey is the alternate credential variable accepted by the
	// Gemini SDK. GoogleAPIKey wins when both are set.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`

	// JudgeModel is the judge model name.
	JudgeModel string `envconfig:"INTERVIEW_JUDGE_MODEL" default:"gemini-2.0-flash"`

	// EmbedModel is the embedding model name.
	EmbedModel string `envconfig:"INTERVIEW_EMBED_MODEL" default:"text-embedding-004"`

	// JudgeWindow is the number of recent turns sent to the accuracy
	// judge as context.
	JudgeWindow int `envconfig:"INTERVIEW_JUDGE_WINDOW" default:"4"`

	// EmbedCacheSize bounds the embedding LRU cache.
	EmbedCacheSize int `envconfig:"INTERVIEW_EMBED_CACHE_SIZE" default:"4096"`

	// Degraded forces the offline hashing embedder even when a credential
	// is present. Similarity then approximates token overlap.
	Degraded bool `envconfig:"INTERVIEW_DEGRADED" default:"false"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// APIKey returns the credential for the Gemini backends, preferring
// GOOGLE_API_KEY over GEMINI_API_KEY. Empty means no credential is set.
func (c *Config) APIKey() string {
	if c.GoogleAPIKey != "" {
		return c.GoogleAPIKey
	}
	return c.GeminiAPIKey
}

// Validate checks settings for internal consistency.
func (c *Config) Validate() error {
	if c.JudgeModel == "" {
		return fmt.Errorf("config: judge model must not be empty")
	}
	if c.EmbedModel == "" {
		return fmt.Errorf("config: embed model must not be empty")
	}
	if c.JudgeWindow < 0 {
		return fmt.Errorf("config: judge window must not be negative, got %d", c.JudgeWindow)
	}
	if c.EmbedCacheSize < 0 {
		return fmt.Errorf("config: embed cache size must not be negative, got %d", c.EmbedCacheSize)
	}
	return nil
}
