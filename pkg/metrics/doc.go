// Package metrics exports Prometheus counters for validation passes.
//
//	m := metrics.NewValidationMetrics("reqcheck", nil)
//	r.Handle("/metrics", m.Handler())
//	...
//	m.Observe(errs)
package metrics
