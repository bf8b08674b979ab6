// Package inference defines a provider-agnostic contract for template-based
// text generation: you provide a prompt template with parameters and get
// back a JSON-first response with usage and timing metadata.
//
// The package contains the universal types ([InferenceRequest],
// [InferenceResponse], [TokenUsage], [HealthCheckResult]), the template
// renderer, the response normalization policy, and the [Service] interface
// every backend adapter must satisfy. Concrete adapters live outside this
// package; the deterministic reference adapter is in [inference/mock].
//
// # Usage
//
// Build a request with the constructor, then hand it to any Service:
//
//	req := inference.NewRequest("Hello {{name}}!",
//	    map[string]string{"name": "Ada"},
//	    inference.ModelTypeGeneral,
//	).WithMaxTokens(256)
//
//	resp, err := svc.Infer(ctx, req)
//	if err != nil {
//	    // err is an *errors.AppError; inspect errors.Code(err) for retry-vs-abort
//	}
//	fmt.Println(resp.Content, resp.Metadata.TokenUsage.TotalTokens)
//
// Adapters are selected at the call site, typically through the registry:
//
//	mgr := inference.NewManager()
//	mgr.Register("mock", mock.Factory)
//	_ = mgr.Initialize("mock", nil)
//	svc, _ := mgr.Get(ctx)
//
// Cross-cutting behavior composes via middleware:
//
//	svc = inference.Chain(
//	    inference.WithLogging(log),
//	    inference.WithTracing("my-service"),
//	    inference.WithMetrics(metrics),
//	)(svc)
package inference
