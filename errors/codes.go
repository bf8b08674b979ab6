package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Request errors (not retryable)
const (
	// ErrCodeInvalidRequest indicates a request field violates its constraints.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeUnsupportedModel indicates the requested model is not served by the adapter.
	ErrCodeUnsupportedModel ErrorCode = "UNSUPPORTED_MODEL"
	// ErrCodeTokenLimitExceeded indicates the request exceeds the model's token limit.
	ErrCodeTokenLimitExceeded ErrorCode = "TOKEN_LIMIT_EXCEEDED"
)

// Backend errors
const (
	// ErrCodeBackendUnavailable indicates the model backend could not be reached or timed out.
	ErrCodeBackendUnavailable ErrorCode = "BACKEND_UNAVAILABLE"
	// ErrCodeBackendError indicates the backend responded but signaled failure.
	ErrCodeBackendError ErrorCode = "BACKEND_ERROR"
	// ErrCodeMalformedResponse indicates the backend returned no usable content at all.
	ErrCodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
	// ErrCodeRateLimited indicates the backend rejected the request due to rate limiting.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
	// ErrCodeTimeout indicates the operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Tokenizer and internal errors
const (
	// ErrCodeTokenCount indicates the tokenizer could not process the given text.
	ErrCodeTokenCount ErrorCode = "TOKEN_COUNT_ERROR"
	// ErrCodeConfiguration indicates invalid adapter configuration (e.g. bad API key).
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeBackendUnavailable: true,
	ErrCodeRateLimited:        true,
	ErrCodeTimeout:            true,
	ErrCodeBackendError:       false,
	ErrCodeInternal:           false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
