package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidRequest, "temperature out of range")
	if err.Code != ErrCodeInvalidRequest {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidRequest, err.Code)
	}
	if err.Message != "temperature out of range" {
		t.Errorf("expected message 'temperature out of range', got %q", err.Message)
	}
	if err.Retryable {
		t.Error("INVALID_REQUEST should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeBackendUnavailable, "connection refused")
	if !err.Retryable {
		t.Error("BACKEND_UNAVAILABLE should be retryable")
	}
}

func TestAppError_InvalidRequest(t *testing.T) {
	err := InvalidRequest("temperature", "must be between 0.0 and 2.0")
	if err.Code != ErrCodeInvalidRequest {
		t.Errorf("expected INVALID_REQUEST, got %s", err.Code)
	}
	if err.Details["field"] != "temperature" {
		t.Errorf("expected field=temperature, got %v", err.Details["field"])
	}
	if !strings.Contains(err.Message, "must be between") {
		t.Errorf("expected reason in message, got %q", err.Message)
	}
}

func TestAppError_InvalidRequest_EmptyField(t *testing.T) {
	err := InvalidRequest("", "bad request")
	if _, ok := err.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_BackendUnavailable(t *testing.T) {
	err := BackendUnavailable("openai")
	if err.Code != ErrCodeBackendUnavailable {
		t.Errorf("expected BACKEND_UNAVAILABLE, got %s", err.Code)
	}
	if !err.Retryable {
		t.Error("BackendUnavailable should be retryable")
	}
	if err.Details["backend"] != "openai" {
		t.Errorf("expected backend=openai, got %v", err.Details["backend"])
	}
}

func TestAppError_BackendError_CauseChain(t *testing.T) {
	cause := fmt.Errorf("status 500")
	err := BackendError("anthropic", cause)
	if err.Code != ErrCodeBackendError {
		t.Errorf("expected BACKEND_ERROR, got %s", err.Code)
	}
	if err.Retryable {
		t.Error("BackendError should not be retryable")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Errorf("expected cause in Error() output, got %q", err.Error())
	}
}

func TestAppError_MalformedResponse(t *testing.T) {
	err := MalformedResponse("mock", "empty payload")
	if err.Code != ErrCodeMalformedResponse {
		t.Errorf("expected MALFORMED_RESPONSE, got %s", err.Code)
	}
	if err.Retryable {
		t.Error("MalformedResponse should not be retryable")
	}
}

func TestAppError_TokenCount(t *testing.T) {
	cause := fmt.Errorf("tokenizer crashed")
	err := TokenCount(cause)
	if err.Code != ErrCodeTokenCount {
		t.Errorf("expected TOKEN_COUNT_ERROR, got %s", err.Code)
	}
	if err.Unwrap() != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestAppError_TokenLimitExceeded(t *testing.T) {
	err := TokenLimitExceeded(1000, 2000)
	if !strings.Contains(err.Message, "Token limit 1000 exceeded, requested 2000") {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Details["limit"] != 1000 || err.Details["requested"] != 2000 {
		t.Errorf("unexpected details %v", err.Details)
	}
}

func TestAppError_WithDetail(t *testing.T) {
	err := Timeout("infer").WithDetail("deadline_ms", 5000)
	if err.Details["deadline_ms"] != 5000 {
		t.Errorf("expected deadline_ms=5000, got %v", err.Details["deadline_ms"])
	}
	if err.Details["operation"] != "infer" {
		t.Errorf("expected operation=infer preserved, got %v", err.Details["operation"])
	}
}

func TestCode_Extraction(t *testing.T) {
	wrapped := fmt.Errorf("infer: %w", RateLimited("openai"))
	if Code(wrapped) != ErrCodeRateLimited {
		t.Errorf("expected RATE_LIMITED through wrap, got %s", Code(wrapped))
	}
	if Code(fmt.Errorf("plain")) != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR for non-AppError, got %s", Code(fmt.Errorf("plain")))
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(Timeout("infer")) {
		t.Error("Timeout should be retryable")
	}
	if IsRetryable(Validation("bad")) {
		t.Error("Validation should not be retryable")
	}
	if IsRetryable(stderrors.New("plain")) {
		t.Error("plain errors should not be retryable")
	}
}
