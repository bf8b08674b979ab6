package inference

import (
	"context"

	"github.com/kynalabs/inferkit/provider"
)

// Service is the capability set every inference adapter must implement.
//
// Implementations must be safe for concurrent use: independent requests
// share no mutable state, and Infer and HealthCheck may be invoked
// concurrently without interference. Adapters holding shared resources
// (connection pools, rate limiters) serialize access to them internally.
//
// Every fallible operation returns either a result or an *errors.AppError;
// failures are never downgraded into an empty or partial response. A
// cancelled or timed-out context surfaces as an error.
type Service interface {
	provider.Provider

	// Infer renders the request template, delegates generation to the
	// backend, and returns the normalized response with metadata.
	Infer(ctx context.Context, req InferenceRequest) (*InferenceResponse, error)

	// HealthCheck reports current backend reachability and capacity.
	// Implementations apply their own timeout policy and must not block
	// indefinitely.
	HealthCheck(ctx context.Context) (*HealthCheckResult, error)

	// SupportedModels returns the model identifiers this adapter can serve.
	// The order is adapter-defined but stable for a given instance.
	SupportedModels() []string

	// CountTokens estimates or exactly computes the token count for text.
	// It is deterministic for a fixed input and adapter configuration.
	CountTokens(text string) (int, error)
}

// EstimateTokens is the default token count approximation: one token per
// four characters, rounded up. It returns 0 only for empty text. Adapters
// wrapping real backends are expected to replace it with provider-accurate
// tokenization while preserving determinism and non-negativity.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}
