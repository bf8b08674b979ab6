package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kynalabs/inferkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for inference observability.
type Metrics struct {
	inferenceTotal    metric.Int64Counter
	inferenceDuration metric.Float64Histogram
	errorTotal        metric.Int64Counter
	promptTokens      metric.Int64Counter
	completionTokens  metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	inferenceTotal, err := meter.Int64Counter("inference.total",
		metric.WithDescription("Total number of inference operations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inference.total counter: %w", err)
	}

	inferenceDuration, err := meter.Float64Histogram("inference.duration",
		metric.WithDescription("Duration of inference operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inference.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("inference.errors",
		metric.WithDescription("Total inference errors by code and service"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inference.errors counter: %w", err)
	}

	promptTokens, err := meter.Int64Counter("inference.tokens.prompt",
		metric.WithDescription("Total prompt tokens consumed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inference.tokens.prompt counter: %w", err)
	}

	completionTokens, err := meter.Int64Counter("inference.tokens.completion",
		metric.WithDescription("Total completion tokens generated"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inference.tokens.completion counter: %w", err)
	}

	return &Metrics{
		inferenceTotal:    inferenceTotal,
		inferenceDuration: inferenceDuration,
		errorTotal:        errorTotal,
		promptTokens:      promptTokens,
		completionTokens:  completionTokens,
	}, nil
}

// RecordInference records a completed inference operation.
func (m *Metrics) RecordInference(ctx context.Context, service, operation, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("service", service),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	m.inferenceTotal.Add(ctx, 1, attrs)
	m.inferenceDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("service", service),
		attribute.String("operation", operation),
	))
}

// RecordError records an error by code and service.
func (m *Metrics) RecordError(ctx context.Context, code, service string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
		attribute.String("service", service),
	))
}

// RecordTokenUsage records token consumption for a served model.
func (m *Metrics) RecordTokenUsage(ctx context.Context, model string, prompt, completion int) {
	attrs := metric.WithAttributes(attribute.String("model", model))
	m.promptTokens.Add(ctx, int64(prompt), attrs)
	m.completionTokens.Add(ctx, int64(completion), attrs)
}
