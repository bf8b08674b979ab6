// Package observability provides OpenTelemetry tracing and metrics for
// inference services.
//
// InitTracer and InitMeter configure the global OTLP-exporting providers;
// the Metrics bundle holds the instruments the inference middleware records
// to (operation counts, latency, errors, and token consumption).
package observability
