// Package errors provides unified error handling for the inference contract.
// It implements structured error types with machine-readable codes, cause
// chains, and retryable detection so callers can decide retry-vs-abort
// without inspecting adapter internals.
package errors
