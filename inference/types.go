package inference

import (
	"fmt"
	"time"
)

// ModelType selects the backend-preferred model class for a request and
// shapes the reference adapter's fabricated output.
type ModelType int

const (
	// ModelTypeGeneral is the balanced default for general text generation.
	ModelTypeGeneral ModelType = iota
	// ModelTypeCoding targets code generation and programming tasks.
	ModelTypeCoding
	// ModelTypeReasoning targets complex multi-step analysis.
	ModelTypeReasoning
	// ModelTypeFast targets quick responses for simple tasks.
	ModelTypeFast
	// ModelTypeCreative targets open-ended creative generation.
	ModelTypeCreative
)

// String returns the model type name.
func (m ModelType) String() string {
	switch m {
	case ModelTypeGeneral:
		return "general"
	case ModelTypeCoding:
		return "coding"
	case ModelTypeReasoning:
		return "reasoning"
	case ModelTypeFast:
		return "fast"
	case ModelTypeCreative:
		return "creative"
	default:
		return "unknown"
	}
}

// IsValid reports whether the value is a known model type.
func (m ModelType) IsValid() bool {
	return m >= ModelTypeGeneral && m <= ModelTypeCreative
}

// ParseModelType converts a model type name to its ModelType value.
func ParseModelType(s string) (ModelType, error) {
	switch s {
	case "general":
		return ModelTypeGeneral, nil
	case "coding":
		return ModelTypeCoding, nil
	case "reasoning":
		return ModelTypeReasoning, nil
	case "fast":
		return ModelTypeFast, nil
	case "creative":
		return ModelTypeCreative, nil
	default:
		return ModelTypeGeneral, fmt.Errorf("unknown model type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler so requests serialize model
// types by name.
func (m ModelType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ModelType) UnmarshalText(text []byte) error {
	parsed, err := ParseModelType(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// PreferredOpenAIModel returns the optimal OpenAI model for this type.
func (m ModelType) PreferredOpenAIModel() string {
	switch m {
	case ModelTypeCoding, ModelTypeReasoning, ModelTypeCreative:
		return "gpt-4o"
	case ModelTypeFast:
		return "gpt-3.5-turbo"
	default:
		return "gpt-4o-mini"
	}
}

// PreferredAnthropicModel returns the optimal Anthropic model for this type.
func (m ModelType) PreferredAnthropicModel() string {
	switch m {
	case ModelTypeCoding, ModelTypeReasoning, ModelTypeCreative:
		return "claude-3-5-sonnet-20241022"
	default:
		return "claude-3-5-haiku-20241022"
	}
}

// TypicalMaxTokens returns the typical completion budget for this type.
func (m ModelType) TypicalMaxTokens() int {
	switch m {
	case ModelTypeCoding, ModelTypeCreative:
		return 4096
	case ModelTypeReasoning:
		return 8192
	case ModelTypeFast:
		return 1024
	default:
		return 2048
	}
}

// TokenUsage reports token consumption for a single inference call.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// NewTokenUsage builds a TokenUsage with TotalTokens derived from its parts.
func NewTokenUsage(promptTokens, completionTokens int) TokenUsage {
	return TokenUsage{
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
	}
}

// HealthStatus is the overall health of an inference backend.
type HealthStatus int

const (
	// HealthStatusHealthy indicates the backend is fully operational.
	HealthStatusHealthy HealthStatus = iota
	// HealthStatusDegraded indicates reduced capability (e.g. elevated latency).
	HealthStatusDegraded
	// HealthStatusUnhealthy indicates the backend cannot serve requests.
	HealthStatusUnhealthy
)

// String returns the status name.
func (s HealthStatus) String() string {
	switch s {
	case HealthStatusHealthy:
		return "healthy"
	case HealthStatusDegraded:
		return "degraded"
	case HealthStatusUnhealthy:
		return "unhealthy"
	default:
		return "unknown"
	}
}

// IsHealthy reports whether the backend can serve requests at full capability.
func (s HealthStatus) IsHealthy() bool {
	return s == HealthStatusHealthy
}

// HealthCheckResult describes backend health at a point in time.
type HealthCheckResult struct {
	Status    HealthStatus      `json:"status"`
	Details   map[string]string `json:"details,omitempty"`
	CheckedAt time.Time         `json:"checked_at"`
}

// NewHealthCheckResult creates a result stamped with the current time.
func NewHealthCheckResult(status HealthStatus) *HealthCheckResult {
	return &HealthCheckResult{
		Status:    status,
		Details:   make(map[string]string),
		CheckedAt: time.Now().UTC(),
	}
}

// WithDetail adds a diagnostic key-value pair and returns the receiver.
func (r *HealthCheckResult) WithDetail(key, value string) *HealthCheckResult {
	if r.Details == nil {
		r.Details = make(map[string]string)
	}
	r.Details[key] = value
	return r
}
