package inference

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kynalabs/inferkit/errors"
	"github.com/kynalabs/inferkit/logger"
	"github.com/kynalabs/inferkit/observability"
)

// Middleware transforms a Service by wrapping it. The returned Service
// delegates to the original while adding cross-cutting behavior
// (logging, metrics, tracing, etc.).
type Middleware func(Service) Service

// Chain composes multiple middlewares into one. Middlewares are applied
// in order: the first middleware is outermost (executes first on the
// way in, last on the way out).
//
// Chain(a, b, c)(svc) is equivalent to a(b(c(svc))).
func Chain(middlewares ...Middleware) Middleware {
	return func(inner Service) Service {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}

// --- logging ---

// WithLogging returns a Middleware that logs each Infer and HealthCheck
// call with a per-call request id, duration, and success/error status.
func WithLogging(log *logger.Logger) Middleware {
	return func(inner Service) Service {
		return &loggingService{inner: inner, log: log}
	}
}

type loggingService struct {
	inner Service
	log   *logger.Logger
}

func (l *loggingService) Name() string                         { return l.inner.Name() }
func (l *loggingService) IsAvailable(ctx context.Context) bool { return l.inner.IsAvailable(ctx) }
func (l *loggingService) SupportedModels() []string            { return l.inner.SupportedModels() }
func (l *loggingService) CountTokens(text string) (int, error) { return l.inner.CountTokens(text) }

func (l *loggingService) Infer(ctx context.Context, req InferenceRequest) (*InferenceResponse, error) {
	requestID := uuid.NewString()
	start := time.Now()
	resp, err := l.inner.Infer(ctx, req)
	duration := time.Since(start)

	fields := map[string]interface{}{
		logger.FieldBackend:   l.inner.Name(),
		logger.FieldRequestID: requestID,
		logger.FieldModelType: req.ModelType.String(),
		logger.FieldDuration:  duration.Milliseconds(),
	}

	if err != nil {
		fields[logger.FieldError] = err.Error()
		l.log.Error("infer failed", fields)
		return nil, err
	}

	fields[logger.FieldModel] = resp.Metadata.Model
	fields[logger.FieldTokens] = resp.Metadata.TokenUsage.TotalTokens
	l.log.Debug("infer ok", fields)
	return resp, nil
}

func (l *loggingService) HealthCheck(ctx context.Context) (*HealthCheckResult, error) {
	result, err := l.inner.HealthCheck(ctx)
	if err != nil {
		l.log.Error("health check failed", logger.ErrorFields("health_check", err))
		return nil, err
	}
	l.log.Debug("health check", map[string]interface{}{
		logger.FieldBackend: l.inner.Name(),
		logger.FieldStatus:  result.Status.String(),
	})
	return result, nil
}

// --- metrics ---

// WithMetrics returns a Middleware that records operation counts, latency,
// errors, and token consumption on the observability instruments.
func WithMetrics(metrics *observability.Metrics) Middleware {
	return func(inner Service) Service {
		return &metricsService{inner: inner, metrics: metrics}
	}
}

type metricsService struct {
	inner   Service
	metrics *observability.Metrics
}

func (m *metricsService) Name() string                         { return m.inner.Name() }
func (m *metricsService) IsAvailable(ctx context.Context) bool { return m.inner.IsAvailable(ctx) }
func (m *metricsService) SupportedModels() []string            { return m.inner.SupportedModels() }
func (m *metricsService) CountTokens(text string) (int, error) { return m.inner.CountTokens(text) }

func (m *metricsService) Infer(ctx context.Context, req InferenceRequest) (*InferenceResponse, error) {
	start := time.Now()
	resp, err := m.inner.Infer(ctx, req)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		m.metrics.RecordError(ctx, string(errors.Code(err)), m.inner.Name())
	}
	m.metrics.RecordInference(ctx, m.inner.Name(), "infer", status, duration)

	if err == nil {
		usage := resp.Metadata.TokenUsage
		m.metrics.RecordTokenUsage(ctx, resp.Metadata.Model, usage.PromptTokens, usage.CompletionTokens)
	}
	return resp, err
}

func (m *metricsService) HealthCheck(ctx context.Context) (*HealthCheckResult, error) {
	start := time.Now()
	result, err := m.inner.HealthCheck(ctx)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		m.metrics.RecordError(ctx, string(errors.Code(err)), m.inner.Name())
	}
	m.metrics.RecordInference(ctx, m.inner.Name(), "health_check", status, duration)
	return result, err
}

// --- tracing ---

// WithTracing returns a Middleware that creates an OpenTelemetry span
// around each Infer call. The span name is "{serviceName}.infer".
func WithTracing(serviceName string) Middleware {
	return func(inner Service) Service {
		return &tracingService{inner: inner, serviceName: serviceName}
	}
}

type tracingService struct {
	inner       Service
	serviceName string
}

func (t *tracingService) Name() string                         { return t.inner.Name() }
func (t *tracingService) IsAvailable(ctx context.Context) bool { return t.inner.IsAvailable(ctx) }
func (t *tracingService) SupportedModels() []string            { return t.inner.SupportedModels() }
func (t *tracingService) CountTokens(text string) (int, error) { return t.inner.CountTokens(text) }

func (t *tracingService) Infer(ctx context.Context, req InferenceRequest) (*InferenceResponse, error) {
	ctx, span := observability.StartSpan(ctx, t.serviceName+".infer")
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrServiceName, t.serviceName)
	observability.SetSpanAttribute(ctx, observability.AttrOperationName, t.inner.Name())
	observability.SetSpanAttribute(ctx, observability.AttrModelType, req.ModelType.String())

	resp, err := t.inner.Infer(ctx, req)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}

	observability.SetSpanAttribute(ctx, observability.AttrModel, resp.Metadata.Model)
	observability.SetSpanAttribute(ctx, observability.AttrPromptTokens, resp.Metadata.TokenUsage.PromptTokens)
	observability.SetSpanAttribute(ctx, observability.AttrOutputTokens, resp.Metadata.TokenUsage.CompletionTokens)
	return resp, nil
}

func (t *tracingService) HealthCheck(ctx context.Context) (*HealthCheckResult, error) {
	ctx, span := observability.StartSpan(ctx, t.serviceName+".health_check")
	defer span.End()

	result, err := t.inner.HealthCheck(ctx)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}
	observability.SetSpanAttribute(ctx, observability.AttrStatus, result.Status.String())
	return result, nil
}
