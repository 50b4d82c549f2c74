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

package telemetry

import (
	"context"
	"os"
	"testing"

	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewWithoutEndpointIsNoop(t *testing.T) {
	// endpointConfigured treats set-but-empty as configured, so the
	// variables must be fully unset. t.Setenv registers the restore.
	for _, key := range []string{"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"} {
		if _, ok := os.LookupEnv(key); ok {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}

	svc, err := New(context.Background())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tp := svc.TracerProvider(); tp != nil {
		t.Errorf("TracerProvider = %v, want nil without an exporter", tp)
	}
	if err := svc.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNewWithSpanProcessor(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()

	svc, err := New(context.Background(),
		WithServiceName("turnmetrics-test"),
		WithSpanProcessor(recorder),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tp := svc.TracerProvider()
	if tp == nil {
		t.Fatal("TracerProvider = nil, want configured provider")
	}

	_, span := tp.Tracer("test").Start(context.Background(), "sample")
	span.End()

	if err := svc.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(ended))
	}
	if got := ended[0].Name(); got != "sample" {
		t.Errorf("span name = %q, want sample", got)
	}
}
