package metrics

import "time"

// Outcome enumerates final run states for the outcome counter.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeSkipped  Outcome = "skipped" // plugin disabled
	OutcomeWriteErr Outcome = "write_error"
	OutcomePanic    Outcome = "panic" // user callback or unexpected failure
)

// Recorder defines observability hooks for generation runs. Implementations
// may forward to Prometheus, OpenTelemetry, etc. The zero-value NoopRecorder
// is the default everywhere, allowing optional injection.
type Recorder interface {
	ObserveGenerateDuration(d time.Duration)
	IncRunOutcome(outcome Outcome)
	IncExtractionFallback()
	ObserveRouteCount(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGenerateDuration(time.Duration) {}
func (NoopRecorder) IncRunOutcome(Outcome)                 {}
func (NoopRecorder) IncExtractionFallback()                {}
func (NoopRecorder) ObserveRouteCount(int)                 {}
