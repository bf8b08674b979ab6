package inference

import (
	"encoding/json"
	"time"
)

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	// Model is the model that actually produced the response.
	Model string `json:"model"`
	// TokenUsage reports token consumption.
	TokenUsage TokenUsage `json:"token_usage"`
	// ProcessingTimeMS is the backend processing time in milliseconds.
	ProcessingTimeMS int64 `json:"processing_time_ms"`
	// CreatedAt is the response timestamp.
	CreatedAt time.Time `json:"created_at"`
	// Extra holds adapter-specific metadata that doesn't fit the universal schema.
	Extra map[string]any `json:"extra,omitempty"`
}

// NewResponseMetadata creates metadata stamped with the current time.
func NewResponseMetadata(model string, usage TokenUsage, processingTime time.Duration) ResponseMetadata {
	return ResponseMetadata{
		Model:            model,
		TokenUsage:       usage,
		ProcessingTimeMS: processingTime.Milliseconds(),
		CreatedAt:        time.Now().UTC(),
	}
}

// WithExtra returns a copy with one adapter-specific metadata entry added.
func (m ResponseMetadata) WithExtra(key string, value any) ResponseMetadata {
	extra := make(map[string]any, len(m.Extra)+1)
	for k, v := range m.Extra {
		extra[k] = v
	}
	extra[key] = value
	m.Extra = extra
	return m
}

// InferenceResponse is the result of a successful Infer call.
//
// Content is always present: it holds the backend output decoded as a JSON
// value (map[string]any, []any, string, float64, bool, or nil) per the
// normalization policy in NormalizeContent. Responses are produced once and
// immutable thereafter.
type InferenceResponse struct {
	Content  any              `json:"content"`
	Metadata ResponseMetadata `json:"metadata"`
}

// NewResponse creates a response from already-normalized content.
func NewResponse(content any, metadata ResponseMetadata) *InferenceResponse {
	return &InferenceResponse{
		Content:  content,
		Metadata: metadata,
	}
}

// ResponseFromText creates a response whose content is the raw text as a
// JSON string value, bypassing JSON detection.
func ResponseFromText(text, model string, usage TokenUsage, processingTime time.Duration) *InferenceResponse {
	return &InferenceResponse{
		Content:  text,
		Metadata: NewResponseMetadata(model, usage, processingTime),
	}
}

// ResponseWithJSONFallback creates a response by normalizing the raw backend
// text: structured JSON when it parses, a plain string value otherwise.
// Every adapter funnels its raw output through this constructor so consumers
// see one uniform content contract.
func ResponseWithJSONFallback(text, model string, usage TokenUsage, processingTime time.Duration) *InferenceResponse {
	return &InferenceResponse{
		Content:  NormalizeContent(text),
		Metadata: NewResponseMetadata(model, usage, processingTime),
	}
}

// NormalizeContent converts raw backend text into a JSON content value.
//
// The raw text is parsed as JSON first; if it parses, the decoded value
// (object, array, string, number, boolean, or null) is returned. Otherwise
// the raw text itself is returned as a string value. Truncated or invalid
// JSON therefore normalizes to a string, never an error.
func NormalizeContent(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
