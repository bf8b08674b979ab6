package inference

import "github.com/kynalabs/inferkit/provider"

// NewRegistry creates a provider registry for inference services.
func NewRegistry() *provider.Registry[Service] {
	return provider.NewRegistry[Service]()
}

// ManagerOption configures the inference service manager.
type ManagerOption func(*managerConfig)

type managerConfig struct {
	selector provider.Selector[Service]
}

// WithSelector sets the service selection strategy for the manager.
func WithSelector(s provider.Selector[Service]) ManagerOption {
	return func(c *managerConfig) {
		c.selector = s
	}
}

// NewManager creates a provider manager for inference services. The default
// selection strategy prefers available services (HealthCheckSelector).
func NewManager(opts ...ManagerOption) *provider.Manager[Service] {
	cfg := &managerConfig{
		selector: &provider.HealthCheckSelector[Service]{},
	}
	for _, o := range opts {
		o(cfg)
	}
	return provider.NewManager(NewRegistry(), cfg.selector)
}
