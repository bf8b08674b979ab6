package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type returned by every contract operation.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// Code extracts the ErrorCode from an error. Returns ErrCodeInternal for
// errors that are not AppErrors.
func Code(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsRetryable reports whether the error represents a transient condition.
func IsRetryable(err error) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Retryable
	}
	return false
}

// --- Common Error Constructors ---

// InvalidRequest creates a new AppError for a request field that violates its constraints.
func InvalidRequest(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidRequest, Message: fmt.Sprintf("Invalid request: %s", reason),
		Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for a validation failure.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidRequest, Message: message, Retryable: false,
	}
}

// UnsupportedModel creates a new AppError for a model the adapter does not serve.
func UnsupportedModel(model string) *AppError {
	return &AppError{
		Code: ErrCodeUnsupportedModel, Message: fmt.Sprintf("Unsupported model: %s", model),
		Retryable: false,
		Details:   map[string]any{"model": model},
	}
}

// TokenLimitExceeded creates a new AppError for a request over the token limit.
func TokenLimitExceeded(limit, requested int) *AppError {
	return &AppError{
		Code: ErrCodeTokenLimitExceeded, Message: fmt.Sprintf("Token limit %d exceeded, requested %d", limit, requested),
		Retryable: false,
		Details:   map[string]any{"limit": limit, "requested": requested},
	}
}

// BackendUnavailable creates a new AppError for a backend that could not be reached.
func BackendUnavailable(backend string) *AppError {
	return &AppError{
		Code: ErrCodeBackendUnavailable, Message: fmt.Sprintf("The %s backend is unreachable. Please try again.", backend),
		Retryable: true,
		Details:   map[string]any{"backend": backend},
	}
}

// BackendError creates a new AppError for a backend that responded with a failure.
func BackendError(backend string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeBackendError, Message: fmt.Sprintf("The %s backend reported an error.", backend),
		Retryable: false,
		Details:   map[string]any{"backend": backend}, Cause: cause,
	}
}

// MalformedResponse creates a new AppError for a backend payload that yielded no content.
func MalformedResponse(backend, reason string) *AppError {
	return &AppError{
		Code: ErrCodeMalformedResponse, Message: fmt.Sprintf("Malformed response from %s: %s", backend, reason),
		Retryable: false,
		Details:   map[string]any{"backend": backend},
	}
}

// RateLimited creates a new AppError for a rate-limited backend.
func RateLimited(backend string) *AppError {
	return &AppError{
		Code: ErrCodeRateLimited, Message: fmt.Sprintf("%s rate limit exceeded. Please wait and try again.", backend),
		Retryable: true,
		Details:   map[string]any{"backend": backend},
	}
}

// Timeout creates a new AppError for an operation that timed out.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: "The operation took too long. Please try again.",
		Retryable: true,
		Details:   map[string]any{"operation": operation},
	}
}

// TokenCount creates a new AppError for a tokenizer failure.
func TokenCount(cause error) *AppError {
	return &AppError{
		Code: ErrCodeTokenCount, Message: "The tokenizer could not process the given text.",
		Retryable: false, Cause: cause,
	}
}

// Configuration creates a new AppError for invalid adapter configuration.
func Configuration(reason string) *AppError {
	return &AppError{
		Code: ErrCodeConfiguration, Message: fmt.Sprintf("Invalid configuration: %s", reason),
		Retryable: false,
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Retryable: false, Cause: cause,
	}
}
