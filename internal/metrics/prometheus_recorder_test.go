package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveGenerateDuration(40 * time.Millisecond)
	pr.IncRunOutcome(OutcomeSuccess)
	pr.IncExtractionFallback()
	pr.ObserveRouteCount(12)
	// Basic scrape to ensure metrics encode without panic
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) == 0 {
		t.Fatalf("expected metrics, got none")
	}
}

func TestNoopRecorderSatisfiesInterface(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveGenerateDuration(time.Second)
	r.IncRunOutcome(OutcomeSkipped)
	r.IncExtractionFallback()
	r.ObserveRouteCount(0)
}
