// Package metrics provides observability hooks for sitemap generation runs.
//
// The package implements the Null Object pattern so components never need
// nil checks: everything defaults to NoopRecorder, whose methods inline to
// nothing. A Prometheus-backed implementation exists for hosts that want
// to collect generation metrics; it is activated by injecting it into the
// generator instead of the noop:
//
//	recorder := metrics.NewPrometheusRecorder(registry)
//	gen := generate.NewGenerator(cfg, outDir).WithRecorder(recorder)
//
// Production code paths default to NoopRecorder; tests and embedding
// hosts opt into the Prometheus recorder explicitly.
package metrics
