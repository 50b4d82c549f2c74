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

// Command turnmetrics replays a recorded interview transcript through the
// turn metrics engine and writes the per-turn metrics log the orchestration
// layer would persist. Offline by default; judge metrics are opt-in.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"google.golang.org/genai"
	"gopkg.in/yaml.v3"

	"github.com/Saad-Manda/SkillIssue.ai/config"
	"github.com/Saad-Manda/SkillIssue.ai/embedding"
	"github.com/Saad-Manda/SkillIssue.ai/judge"
	"github.com/Saad-Manda/SkillIssue.ai/metrics"
	"github.com/Saad-Manda/SkillIssue.ai/telemetry"
)

type scoreFlags struct {
	transcript string
	out        string
	llm        bool
	only       []string
}

var flags scoreFlags

// transcriptEntry is one question/answer exchange in the input file.
// Transcripts are YAML (or JSON, which YAML subsumes) lists of entries.
type transcriptEntry struct {
	Phase    string `yaml:"phase" json:"phase"`
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// turnRecord is the persisted form of one scored turn.
type turnRecord struct {
	ChatID   string          `json:"chat_id"`
	Phase    string          `json:"phase_name,omitempty"`
	Question string          `json:"question"`
	Answer   string          `json:"response"`
	Metrics  metrics.Metrics `json:"metrics"`
}

var rootCmd = &cobra.Command{
	Use:   "turnmetrics",
	Short: "Score interview transcripts with the turn metrics engine.",
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Replay a transcript and emit per-turn metrics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return flags.run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringVarP(&flags.transcript, "transcript", "t", "", "Transcript file (YAML or JSON list of {phase, question, answer})")
	scoreCmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output file (default stdout)")
	scoreCmd.Flags().BoolVar(&flags.llm, "llm", false, "Run the LLM-judged metrics (FARQ, RFD)")
	scoreCmd.Flags().StringSliceVarP(&flags.only, "metric", "m", nil, "Score only the named metrics (repeatable)")
	_ = scoreCmd.MarkFlagRequired("transcript")
}

func (f *scoreFlags) run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	tel, err := telemetry.New(ctx)
	if err != nil {
		return err
	}
	tel.SetGlobalOtelProviders()
	defer func() {
		if err := tel.Shutdown(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "turnmetrics: telemetry shutdown: %v\n", err)
		}
	}()

	engine, err := buildEngine(ctx, cfg, f.llm)
	if err != nil {
		return err
	}

	entries, err := readTranscript(f.transcript)
	if err != nil {
		return err
	}

	records := make([]turnRecord, 0, len(entries))
	var history []metrics.Turn
	for i, entry := range entries {
		m, err := f.scoreTurn(ctx, engine, entry, history)
		if err != nil {
			return fmt.Errorf("turn %d: %w", i+1, err)
		}
		records = append(records, turnRecord{
			ChatID:   uuid.NewString(),
			Phase:    entry.Phase,
			Question: entry.Question,
			Answer:   entry.Answer,
			Metrics:  m,
		})
		history = append(history,
			metrics.Turn{Role: metrics.RoleUser, Content: entry.Question},
			metrics.Turn{Role: metrics.RoleAssistant, Content: entry.Answer},
		)
	}

	return writeRecords(f.out, records)
}

func (f *scoreFlags) scoreTurn(ctx context.Context, engine *metrics.Engine, entry transcriptEntry, history []metrics.Turn) (metrics.Metrics, error) {
	if len(f.only) > 0 {
		m := metrics.Metrics{}
		for _, name := range f.only {
			v, err := metrics.DefaultRegistry.Score(ctx, metrics.MetricType(name), engine, entry.Question, entry.Answer, history)
			if err != nil {
				return nil, err
			}
			m[metrics.MetricType(name)] = v
		}
		return m, nil
	}
	return engine.CalculateTurnMetrics(ctx, entry.Question, entry.Answer, history, metrics.Options{
		BehavioralPhase: strings.Contains(strings.ToLower(entry.Phase), "behavior"),
		RunLLMMetrics:   f.llm,
	})
}

func buildEngine(ctx context.Context, cfg *config.Config, wantLLM bool) (*metrics.Engine, error) {
	var embedder embedding.Provider
	if cfg.Degraded || cfg.APIKey() == "" {
		embedder = embedding.NewHashing()
	} else {
		gemini, err := embedding.NewGemini(ctx, cfg.EmbedModel, &genai.ClientConfig{APIKey: cfg.APIKey()})
		if err != nil {
			return nil, err
		}
		cached, err := embedding.NewCached(gemini, cfg.EmbedCacheSize)
		if err != nil {
			return nil, err
		}
		embedder = cached
	}

	var critic judge.Critic
	if wantLLM {
		c, err := judge.NewGemini(ctx, judge.GeminiConfig{
			Model:  cfg.JudgeModel,
			Client: &genai.ClientConfig{APIKey: cfg.APIKey()},
		})
		switch {
		case err == nil:
			critic = c
		case errors.Is(err, judge.ErrUnavailable):
			// Judge metrics will carry the -1.0 sentinel.
			fmt.Fprintln(os.Stderr, "turnmetrics: no judge credential configured; FARQ/RFD will be -1.0")
		default:
			return nil, err
		}
	}

	return metrics.NewEngine(metrics.Config{
		Embedder:    embedder,
		Critic:      critic,
		JudgeWindow: cfg.JudgeWindow,
	})
}

func readTranscript(path string) ([]transcriptEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	var entries []transcriptEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}
	return entries, nil
}

func writeRecords(path string, records []turnRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
