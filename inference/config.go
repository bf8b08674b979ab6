package inference

import (
	"github.com/kynalabs/inferkit/errors"
	"github.com/kynalabs/inferkit/logger"
)

// Config holds configuration for an inference adapter instance. Adapters
// accept a Config at construction and apply its defaults to requests that
// leave the corresponding fields unset. The mapstructure tags make the
// struct loadable through config.LoadConfig.
type Config struct {
	// Name identifies this adapter instance (e.g., "primary", "fallback").
	Name string `yaml:"name" json:"name" mapstructure:"name"`

	// ModelType is the default model class ("general", "coding", "reasoning",
	// "fast", "creative"). Empty means general.
	ModelType string `yaml:"model_type" json:"model_type" mapstructure:"model_type"`

	// Model pins a specific model for every request. Empty means the
	// type-preferred model.
	Model string `yaml:"model" json:"model" mapstructure:"model"`

	// Temperature is the default sampling temperature. Nil means
	// DefaultTemperature; an explicit 0 is kept as 0.
	Temperature *float64 `yaml:"temperature" json:"temperature" mapstructure:"temperature"`

	// MaxTokens is the default completion budget. 0 means the model type's
	// typical budget.
	MaxTokens int `yaml:"max_tokens" json:"max_tokens" mapstructure:"max_tokens"`

	// Logging configures the adapter's logger.
	Logging logger.Config `yaml:"logging" json:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills unset fields with contract defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "inference"
	}
	if c.ModelType == "" {
		c.ModelType = ModelTypeGeneral.String()
	}
	if c.Temperature == nil {
		temperature := DefaultTemperature
		c.Temperature = &temperature
	}
	c.Logging.ApplyDefaults()
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Name
	}
}

// Validate checks the configuration for contract violations.
func (c *Config) Validate() error {
	if _, err := ParseModelType(c.ModelType); c.ModelType != "" && err != nil {
		return errors.Configuration("unknown model_type: " + c.ModelType)
	}
	if c.Temperature != nil && (*c.Temperature < MinTemperature || *c.Temperature > MaxTemperature) {
		return errors.Configuration("temperature out of range [0, 2]")
	}
	if c.MaxTokens < 0 {
		return errors.Configuration("max_tokens must be non-negative")
	}
	return nil
}

// SetupLogging initializes the global logger from the adapter's logging
// configuration and seeds the named loggers the library resolves through
// logger.Get.
func (c *Config) SetupLogging() {
	logger.Init(c.Logging)
	logger.RegisterDefaults("inference", "provider")
}

// NewRequestFromConfig creates a request seeded with the config's defaults.
// Explicit request builders still override any of them.
func (c *Config) NewRequestFromConfig(template string, parameters map[string]string) InferenceRequest {
	modelType := ModelTypeGeneral
	if mt, err := ParseModelType(c.ModelType); err == nil {
		modelType = mt
	}
	req := NewRequest(template, parameters, modelType)
	if c.Model != "" {
		req = req.WithModel(c.Model)
	}
	if c.Temperature != nil {
		req = req.WithTemperature(*c.Temperature)
	}
	if c.MaxTokens != 0 {
		req = req.WithMaxTokens(c.MaxTokens)
	}
	return req
}
