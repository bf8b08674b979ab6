package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("inference-service")

	if cfg.ServiceName != "inference-service" {
		t.Errorf("expected ServiceName 'inference-service', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("inference-service")

	if cfg.ServiceName != "inference-service" {
		t.Errorf("expected ServiceName 'inference-service', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestNewMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	if metrics == nil {
		t.Fatal("expected non-nil metrics")
	}

	ctx := context.Background()
	metrics.RecordInference(ctx, "mock", "infer", "ok", 100*time.Millisecond)
	metrics.RecordError(ctx, "BACKEND_ERROR", "mock")
	metrics.RecordTokenUsage(ctx, "mock-general", 10, 20)
}

func TestSpanHelpers(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "infer")
	SetSpanAttribute(ctx, AttrModel, "mock-general")
	SetSpanAttribute(ctx, AttrPromptTokens, 12)
	SetSpanError(ctx, errors.New("backend down"))
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if len(spans[0].Events) == 0 {
		t.Error("expected recorded error event on span")
	}

	found := false
	for _, attr := range spans[0].Attributes {
		if string(attr.Key) == AttrModel && attr.Value.AsString() == "mock-general" {
			found = true
		}
	}
	if !found {
		t.Error("expected model attribute on span")
	}
}

func TestSetSpanAttribute_NoSpanIsNoop(t *testing.T) {
	// Must not panic without a recording span in context.
	SetSpanAttribute(context.Background(), AttrModel, "mock")
	SetSpanError(context.Background(), errors.New("ignored"))
}
