// Package mock provides a deterministic, non-networked inference service.
//
// The mock renders templates and fabricates structured JSON payloads shaped
// by the request's model type, making it both a testing double and a runnable
// reference for the contract's expected response shapes.
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/kynalabs/inferkit/errors"
	"github.com/kynalabs/inferkit/inference"
	"github.com/kynalabs/inferkit/provider"
)

// DefaultLatency is the simulated processing delay applied by New.
const DefaultLatency = 100 * time.Millisecond

// Option configures a mock Service.
type Option func(*Service)

// WithLatency sets the simulated processing delay per Infer call.
func WithLatency(d time.Duration) Option {
	return func(s *Service) {
		s.latency = d
	}
}

// WithHealthFailure makes HealthCheck report an unhealthy backend.
func WithHealthFailure() Option {
	return func(s *Service) {
		s.healthFails = true
	}
}

// WithCustomResponse fixes the raw backend text returned for every Infer
// call, bypassing per-model-type payload fabrication. The text still goes
// through JSON normalization, so invalid JSON surfaces as a string value.
func WithCustomResponse(response string) Option {
	return func(s *Service) {
		s.customResponse = &response
	}
}

// Service is a deterministic inference service with no external dependencies.
//
// All fields are set at construction and never mutated, so a single instance
// is safe for concurrent use.
type Service struct {
	latency        time.Duration
	healthFails    bool
	customResponse *string
}

// New creates a mock service with the default simulated latency.
func New(opts ...Option) *Service {
	s := &Service{latency: DefaultLatency}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Factory creates a mock service from a configuration map, for registration
// with a provider registry. Recognized keys: "latency_ms" (number),
// "health_fails" (bool), "custom_response" (string).
func Factory(cfg map[string]any) (inference.Service, error) {
	var opts []Option
	if v, ok := cfg["latency_ms"]; ok {
		switch ms := v.(type) {
		case int:
			opts = append(opts, WithLatency(time.Duration(ms)*time.Millisecond))
		case float64:
			opts = append(opts, WithLatency(time.Duration(ms)*time.Millisecond))
		default:
			return nil, errors.Configuration("latency_ms must be a number")
		}
	}
	if v, ok := cfg["health_fails"].(bool); ok && v {
		opts = append(opts, WithHealthFailure())
	}
	if v, ok := cfg["custom_response"].(string); ok {
		opts = append(opts, WithCustomResponse(v))
	}
	return New(opts...), nil
}

var _ inference.Service = (*Service)(nil)
var _ provider.Factory[inference.Service] = Factory

// Name returns the provider name.
func (s *Service) Name() string {
	return "mock"
}

// IsAvailable reports whether the mock will pass health checks.
func (s *Service) IsAvailable(ctx context.Context) bool {
	return !s.healthFails
}

// Infer renders the request template, fabricates a model-type-shaped JSON
// payload, and returns it normalized. Processing time in the metadata is
// real elapsed wall-clock time, including the simulated latency.
func (s *Service) Infer(ctx context.Context, req inference.InferenceRequest) (*inference.InferenceResponse, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-ctx.Done():
			return nil, errors.Timeout("infer").WithCause(ctx.Err())
		}
	}

	rendered := req.RenderPrompt()
	content := s.generateContent(rendered, req.ModelType)

	model := req.ModelOverride
	if model == "" {
		model = "mock-" + req.ModelType.String()
	}

	usage := inference.NewTokenUsage(
		inference.EstimateTokens(rendered),
		inference.EstimateTokens(content),
	)

	return inference.ResponseWithJSONFallback(content, model, usage, time.Since(start)), nil
}

// generateContent fabricates the raw backend text for a rendered prompt.
func (s *Service) generateContent(rendered string, modelType inference.ModelType) string {
	if s.customResponse != nil {
		return *s.customResponse
	}

	var payload map[string]any
	switch modelType {
	case inference.ModelTypeCoding:
		payload = map[string]any{
			"code":        fmt.Sprintf("// Generated code for: %s\nfunc main() {\n\tfmt.Println(\"Hello from mock!\")\n}", rendered),
			"language":    "go",
			"explanation": "This is a basic program generated from the template.",
		}
	case inference.ModelTypeReasoning:
		payload = map[string]any{
			"analysis": fmt.Sprintf("After careful analysis of '%s'...", rendered),
			"reasoning_steps": []string{
				"First, I analyzed the template and parameters",
				"Then, I considered the context and implications",
				"Finally, I formulated this structured response",
			},
			"conclusion": "This is a mock reasoning response with detailed analysis.",
		}
	case inference.ModelTypeCreative:
		payload = map[string]any{
			"story": fmt.Sprintf("Once upon a time, when prompted with '%s', there was a magical response...", rendered),
			"genre": "fantasy",
			"mood":  "whimsical",
		}
	case inference.ModelTypeFast:
		payload = map[string]any{
			"message":  fmt.Sprintf("Quick response: %s", rendered),
			"response": fmt.Sprintf("Quick response: %s", rendered),
		}
	default:
		payload = map[string]any{
			"message":  fmt.Sprintf("Mock completion for: %s", rendered),
			"response": fmt.Sprintf("Mock completion for: %s", rendered),
		}
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		// Payloads are maps of strings and string slices; marshaling cannot fail.
		return rendered
	}
	return string(encoded)
}

// HealthCheck reports Healthy with mock diagnostics, or Unhealthy when the
// service was built with WithHealthFailure.
func (s *Service) HealthCheck(ctx context.Context) (*inference.HealthCheckResult, error) {
	if s.healthFails {
		return inference.NewHealthCheckResult(inference.HealthStatusUnhealthy).
			WithDetail("reason", "mock service intentionally failing"), nil
	}
	return inference.NewHealthCheckResult(inference.HealthStatusHealthy).
		WithDetail("service", "mock").
		WithDetail("latency_ms", strconv.FormatInt(s.latency.Milliseconds(), 10)), nil
}

// SupportedModels returns the fixed placeholder model identifiers.
func (s *Service) SupportedModels() []string {
	return []string{
		"mock-general",
		"mock-coding",
		"mock-fast",
		"mock-creative",
		"mock-reasoning",
	}
}

// CountTokens estimates tokens with the default approximation; it never fails.
func (s *Service) CountTokens(text string) (int, error) {
	return inference.EstimateTokens(text), nil
}
