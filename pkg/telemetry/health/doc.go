// Package health provides liveness and readiness probes for the
// validation API server.
//
// Liveness answers immediately; readiness runs registered component
// probes (such as a history store ping) with a per-probe timeout:
//
//	checker := health.New(0)
//	checker.RegisterCheck("history", func(ctx context.Context) error {
//		_, err := store.List(ctx, history.Filter{Limit: 1})
//		return err
//	})
//	mux.Get("/health", checker.LivenessHandler())
//	mux.Get("/ready", checker.ReadinessHandler())
package health
