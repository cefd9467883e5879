// Package generate orchestrates one sitemap generation run: extract,
// merge, exclude, deduplicate, enrich, serialize, write. The run is
// wrapped so no failure ever reaches the host build process.
package generate

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mvp-kit/vite-sitemap-plugin/internal/config"
	errs "github.com/mvp-kit/vite-sitemap-plugin/internal/errors"
	"github.com/mvp-kit/vite-sitemap-plugin/internal/logfields"
	"github.com/mvp-kit/vite-sitemap-plugin/internal/metrics"
	"github.com/mvp-kit/vite-sitemap-plugin/internal/routes"
	"github.com/mvp-kit/vite-sitemap-plugin/internal/seo"
	"github.com/mvp-kit/vite-sitemap-plugin/internal/sitemap"
	"github.com/mvp-kit/vite-sitemap-plugin/internal/util/sets"
)

// Output file names inside the build output directory.
const (
	SitemapFile = "sitemap.xml"
	RobotsFile  = "robots.txt"
)

// Generator runs the generation pipeline for one build.
type Generator struct {
	cfg       *config.Config
	outputDir string
	logger    *slog.Logger
	recorder  metrics.Recorder
	extractor *routes.Extractor
	now       func() time.Time
}

// NewGenerator creates a generator writing into outputDir. Metrics
// default to the noop recorder and logging to slog.Default().
func NewGenerator(cfg *config.Config, outputDir string) *Generator {
	logger := slog.Default()
	return &Generator{
		cfg:       cfg,
		outputDir: filepath.Clean(outputDir),
		logger:    logger,
		recorder:  metrics.NoopRecorder{},
		extractor: routes.New(logger),
		now:       time.Now,
	}
}

// WithLogger injects the diagnostic sink used by the generator and its
// extractor.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	if logger != nil {
		g.logger = logger
		g.extractor = routes.New(logger)
	}
	return g
}

// WithRecorder injects a metrics recorder.
func (g *Generator) WithRecorder(r metrics.Recorder) *Generator {
	if r != nil {
		g.recorder = r
	}
	return g
}

// WithClock overrides the build-date source. Tests use this to pin
// lastmod values.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	if now != nil {
		g.now = now
	}
	return g
}

// Run is the no-argument entry point invoked once per build after
// bundling. It never returns an error and never panics: write failures
// and panicking user callbacks are logged and swallowed so the host
// build always continues.
func (g *Generator) Run() {
	runID := uuid.NewString()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			g.recorder.IncRunOutcome(metrics.OutcomePanic)
			g.logger.Error("sitemap generation aborted",
				logfields.RunID(runID),
				logfields.Error(errs.CallbackFailure(r)))
		}
	}()

	if !g.cfg.Enabled {
		g.logger.Info("sitemap generation disabled, skipping", logfields.RunID(runID))
		g.recorder.IncRunOutcome(metrics.OutcomeSkipped)
		return
	}

	if err := g.run(runID); err != nil {
		g.recorder.IncRunOutcome(metrics.OutcomeWriteErr)
		g.logger.Error("sitemap generation failed",
			logfields.RunID(runID),
			logfields.Error(err))
		return
	}

	elapsed := time.Since(start)
	g.recorder.ObserveGenerateDuration(elapsed)
	g.recorder.IncRunOutcome(metrics.OutcomeSuccess)
	g.logger.Info("sitemap generated",
		logfields.RunID(runID),
		logfields.OutputDir(g.outputDir),
		logfields.DurationMS(float64(elapsed.Milliseconds())))
}

// run executes steps 2-11 of the pipeline. Only output failures are
// returned; extraction has already degraded internally.
func (g *Generator) run(runID string) error {
	manifestPath, err := filepath.Abs(g.cfg.RouteTreePath)
	if err != nil {
		manifestPath = g.cfg.RouteTreePath
	}
	outputDir, err := filepath.Abs(g.outputDir)
	if err != nil {
		outputDir = g.outputDir
	}

	extracted, strategy := g.extractor.FromFile(manifestPath)
	if strategy == routes.StrategyFallback {
		g.recorder.IncExtractionFallback()
	}
	g.logger.Debug("routes extracted",
		logfields.RunID(runID),
		logfields.Manifest(manifestPath),
		logfields.Strategy(string(strategy)),
		logfields.RouteCount(len(extracted)))

	final := MergeRoutes(extracted, g.cfg.AdditionalRoutes, g.cfg.ExcludeRoutes)

	records := seo.Enrich(final, seo.Options{
		Priority:   g.cfg.GetRoutePriority,
		Changefreq: g.cfg.GetRouteChangefreq,
		BuildTime:  g.now(),
	})
	g.recorder.ObserveRouteCount(len(records))

	// Serialize everything before touching the filesystem so an
	// aborted run leaves the output directory untouched.
	sitemapXML, err := sitemap.Render(records, g.cfg.BaseURL)
	if err != nil {
		return errs.Wrap(err, errs.CategoryInternal, errs.SeverityError, "sitemap serialization failed")
	}
	var robotsTxt string
	if g.cfg.IncludeRobots {
		robotsTxt = sitemap.RenderRobots(g.cfg.BaseURL)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errs.OutputWriteFailure(outputDir, err)
	}

	sitemapPath := filepath.Join(outputDir, SitemapFile)
	if err := os.WriteFile(sitemapPath, []byte(sitemapXML), 0o644); err != nil {
		// Abort early: robots.txt is skipped when the sitemap write fails.
		return errs.OutputWriteFailure(sitemapPath, err)
	}
	g.logger.Debug("wrote sitemap", logfields.RunID(runID), logfields.File(sitemapPath))

	if g.cfg.IncludeRobots {
		robotsPath := filepath.Join(outputDir, RobotsFile)
		if err := os.WriteFile(robotsPath, []byte(robotsTxt), 0o644); err != nil {
			return errs.OutputWriteFailure(robotsPath, err)
		}
		g.logger.Debug("wrote robots", logfields.RunID(runID), logfields.File(robotsPath))
	}

	return nil
}

// MergeRoutes appends additional routes after the extracted ones, drops
// excluded paths, and deduplicates keeping the first occurrence.
func MergeRoutes(extracted, additional, excluded []string) []string {
	exclude := sets.New(excluded...)
	seen := sets.New[string]()

	final := make([]string, 0, len(extracted)+len(additional))
	for _, route := range append(append([]string{}, extracted...), additional...) {
		if exclude.Has(route) || seen.Has(route) {
			continue
		}
		seen.Add(route)
		final = append(final, route)
	}
	return final
}
