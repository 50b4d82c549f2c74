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

// Package telemetry configures OpenTelemetry tracing for the turn-metrics
// tooling. The library packages only create spans through the global tracer;
// installing providers is the caller's responsibility, and this package does
// it for the CLI.
//
// An OTLP HTTP trace exporter is configured when OTEL_EXPORTER_OTLP_ENDPOINT
// or OTEL_EXPORTER_OTLP_TRACES_ENDPOINT is set; otherwise New returns a
// no-op service and spans stay unrecorded.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.36.0"
)

// Service wraps the configured providers and manages their lifecycle.
type Service interface {
	// SetGlobalOtelProviders registers the configured providers as the
	// global OTel providers.
	SetGlobalOtelProviders()

	// TracerProvider returns the configured TracerProvider, or nil when
	// no exporter was configured.
	TracerProvider() *sdktrace.TracerProvider

	// Shutdown flushes and shuts down the underlying providers.
	Shutdown(ctx context.Context) error
}

type config struct {
	serviceName    string
	resource       *resource.Resource
	spanProcessors []sdktrace.SpanProcessor
}

// Option customizes the telemetry setup.
type Option func(*config)

// WithServiceName sets the service.name resource attribute.
func WithServiceName(name string) Option {
	return func(c *config) { c.serviceName = name }
}

// WithResource merges a caller-provided resource over the defaults.
func WithResource(r *resource.Resource) Option {
	return func(c *config) { c.resource = r }
}

// WithSpanProcessor adds a span processor, e.g. for in-process span capture
// in tests.
func WithSpanProcessor(p sdktrace.SpanProcessor) Option {
	return func(c *config) { c.spanProcessors = append(c.spanProcessors, p) }
}

// New initializes tracing. The caller must call Shutdown to flush spans.
func New(ctx context.Context, opts ...Option) (Service, error) {
	cfg := &config{serviceName: "turnmetrics"}
	for _, opt := range opts {
		opt(cfg)
	}

	if endpointConfigured() {
		exporter, err := otlptracehttp.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("telemetry: create OTLP HTTP exporter: %w", err)
		}
		cfg.spanProcessors = append(cfg.spanProcessors, sdktrace.NewBatchSpanProcessor(exporter))
	}

	if len(cfg.spanProcessors) == 0 {
		return noopService{}, nil
	}

	res, err := resolveResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tpOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	for _, p := range cfg.spanProcessors {
		tpOpts = append(tpOpts, sdktrace.WithSpanProcessor(p))
	}

	return &service{tp: sdktrace.NewTracerProvider(tpOpts...)}, nil
}

func endpointConfigured() bool {
	if _, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_ENDPOINT"); ok {
		return true
	}
	_, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT")
	return ok
}

// resolveResource layers the default resource (OTEL_SERVICE_NAME and
// OTEL_RESOURCE_ATTRIBUTES aware), the configured service name, and any
// caller-provided resource, later entries winning.
func resolveResource(ctx context.Context, cfg *config) (*resource.Resource, error) {
	base, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String(cfg.serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create resource: %w", err)
	}
	r, err := resource.Merge(resource.Default(), base)
	if err != nil {
		return nil, fmt.Errorf("telemetry: merge resources: %w", err)
	}
	if cfg.resource != nil {
		r, err = resource.Merge(r, cfg.resource)
		if err != nil {
			return nil, fmt.Errorf("telemetry: merge caller resource: %w", err)
		}
	}
	return r, nil
}

type service struct {
	tp *sdktrace.TracerProvider
}

func (s *service) SetGlobalOtelProviders() {
	otel.SetTracerProvider(s.tp)
}

func (s *service) TracerProvider() *sdktrace.TracerProvider { return s.tp }

func (s *service) Shutdown(ctx context.Context) error {
	if err := s.tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("telemetry: shutdown tracer provider: %w", err)
	}
	return nil
}

type noopService struct{}

func (noopService) SetGlobalOtelProviders()                  {}
func (noopService) TracerProvider() *sdktrace.TracerProvider { return nil }
func (noopService) Shutdown(context.Context) error           { return nil }
