package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	generateDuration    prom.Histogram
	runOutcomes         *prom.CounterVec
	extractionFallbacks prom.Counter
	routeCount          prom.Histogram
}

// NewPrometheusRecorder constructs and registers generation metrics on reg.
// A nil registry gets a fresh private one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		generateDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "sitemapgen",
			Name:      "generate_duration_seconds",
			Help:      "Total duration of a sitemap generation run",
			Buckets:   prom.DefBuckets,
		}),
		runOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitemapgen",
			Name:      "run_outcomes_total",
			Help:      "Generation run outcomes by final status",
		}, []string{"outcome"}),
		extractionFallbacks: prom.NewCounter(prom.CounterOpts{
			Namespace: "sitemapgen",
			Name:      "extraction_fallbacks_total",
			Help:      "Runs where no extraction strategy matched and the fallback route list was used",
		}),
		routeCount: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "sitemapgen",
			Name:      "route_count",
			Help:      "Number of routes in the final sitemap per run",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}
	reg.MustRegister(pr.generateDuration, pr.runOutcomes, pr.extractionFallbacks, pr.routeCount)
	return pr
}

func (pr *PrometheusRecorder) ObserveGenerateDuration(d time.Duration) {
	pr.generateDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncRunOutcome(outcome Outcome) {
	pr.runOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (pr *PrometheusRecorder) IncExtractionFallback() {
	pr.extractionFallbacks.Inc()
}

func (pr *PrometheusRecorder) ObserveRouteCount(n int) {
	pr.routeCount.Observe(float64(n))
}
