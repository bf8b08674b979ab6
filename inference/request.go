package inference

import (
	"github.com/kynalabs/inferkit/validation"
)

// DefaultTemperature is the sampling temperature seeded by NewRequest.
const DefaultTemperature = 0.7

// Temperature bounds accepted by the contract.
const (
	MinTemperature = 0.0
	MaxTemperature = 2.0
)

// InferenceRequest is a template-based inference request.
//
// Requests are values: the With* builders return an updated copy and never
// mutate shared state, so a request can be reused as a base for variants.
type InferenceRequest struct {
	// Template is the prompt template with placeholders like "Hello {{name}}!".
	Template string `json:"template"`
	// Parameters are the values substituted into the template.
	Parameters map[string]string `json:"parameters,omitempty"`
	// ModelType selects the backend-preferred model class.
	ModelType ModelType `json:"model_type"`
	// ModelOverride pins a specific model instead of the type-preferred one.
	ModelOverride string `json:"model_override,omitempty"`
	// MaxTokens bounds the completion length. 0 means backend default.
	MaxTokens int `json:"max_tokens,omitempty" validate:"gte=0"`
	// Temperature controls sampling randomness, in [0, 2]. Nil means the
	// backend's default; an explicit 0 is a valid deterministic setting.
	Temperature *float64 `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=2"`
	// Metadata carries caller-defined request annotations.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewRequest creates a request seeded with the model type's typical token
// budget and the default temperature. The parameters map is copied.
func NewRequest(template string, parameters map[string]string, modelType ModelType) InferenceRequest {
	temperature := DefaultTemperature
	return InferenceRequest{
		Template:    template,
		Parameters:  copyStringMap(parameters),
		ModelType:   modelType,
		MaxTokens:   modelType.TypicalMaxTokens(),
		Temperature: &temperature,
	}
}

// WithModel returns a copy with a specific model pinned. The adapter reports
// the model actually used in the response metadata.
func (r InferenceRequest) WithModel(model string) InferenceRequest {
	r.ModelOverride = model
	return r
}

// WithMaxTokens returns a copy with the completion budget set.
func (r InferenceRequest) WithMaxTokens(maxTokens int) InferenceRequest {
	r.MaxTokens = maxTokens
	return r
}

// WithTemperature returns a copy with the sampling temperature set,
// clamped into [MinTemperature, MaxTemperature]. An explicit 0 is kept as 0,
// distinct from the unset (nil) state.
func (r InferenceRequest) WithTemperature(temperature float64) InferenceRequest {
	if temperature < MinTemperature {
		temperature = MinTemperature
	}
	if temperature > MaxTemperature {
		temperature = MaxTemperature
	}
	r.Temperature = &temperature
	return r
}

// WithoutTemperature returns a copy with the temperature unset, deferring to
// the backend's default.
func (r InferenceRequest) WithoutTemperature() InferenceRequest {
	r.Temperature = nil
	return r
}

// WithParameter returns a copy with one substitution parameter added.
func (r InferenceRequest) WithParameter(key, value string) InferenceRequest {
	params := copyStringMap(r.Parameters)
	if params == nil {
		params = make(map[string]string, 1)
	}
	params[key] = value
	r.Parameters = params
	return r
}

// WithRequestMetadata returns a copy with one metadata annotation added.
func (r InferenceRequest) WithRequestMetadata(key, value string) InferenceRequest {
	md := copyStringMap(r.Metadata)
	if md == nil {
		md = make(map[string]string, 1)
	}
	md[key] = value
	r.Metadata = md
	return r
}

// RenderPrompt produces the final prompt from the template and parameters.
func (r InferenceRequest) RenderPrompt() string {
	return RenderTemplate(r.Template, r.Parameters)
}

// Validate checks the request against the contract's constraints and returns
// an InvalidRequest error describing every violated field.
func (r InferenceRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	v := validation.New()
	v.Check(r.ModelType.IsValid(), "model_type", "unknown model type")
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func copyStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	cp := make(map[string]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
