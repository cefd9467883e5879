// Package sitemapplugin exposes the build-lifecycle surface of the
// sitemap generator as a library. A host build system creates a Plugin
// once at setup and invokes Run exactly once after bundling completes;
// the plugin performs no work before that point and produces no output
// if Run is never called. Run never fails the host build.
package sitemapplugin

import (
	"log/slog"

	"github.com/mvp-kit/vite-sitemap-plugin/internal/config"
	"github.com/mvp-kit/vite-sitemap-plugin/internal/generate"
	"github.com/mvp-kit/vite-sitemap-plugin/internal/seo"
)

// Changefreq re-exports the sitemap-protocol update-frequency hint for
// use in GetRouteChangefreq overrides.
type Changefreq = seo.Changefreq

const (
	Always  = seo.Always
	Hourly  = seo.Hourly
	Daily   = seo.Daily
	Weekly  = seo.Weekly
	Monthly = seo.Monthly
	Yearly  = seo.Yearly
	Never   = seo.Never
)

// Options is the plugin configuration, supplied once at setup and
// read-only thereafter.
type Options struct {
	// BaseURL is the absolute site URL. Required. A trailing slash is
	// trimmed; no further URL validation is performed.
	BaseURL string

	// RouteTreePath locates the generated route manifest. Defaults to
	// src/routeTree.gen.ts, resolved against the working directory.
	RouteTreePath string

	// OutDir is the build output directory. Defaults to dist.
	OutDir string

	// Enabled gates the run. Nil means true.
	Enabled *bool

	// IncludeRobots controls robots.txt emission. Nil means true.
	IncludeRobots *bool

	// AdditionalRoutes are appended after extracted routes, in order.
	AdditionalRoutes []string

	// ExcludeRoutes are removed from the final list by exact path match.
	ExcludeRoutes []string

	// GetRoutePriority overrides the default priority rule. Returning
	// false falls back to the default for that route.
	GetRoutePriority func(route string) (float64, bool)

	// GetRouteChangefreq overrides the default change-frequency rule.
	// Returning "" falls back to the default for that route.
	GetRouteChangefreq func(route string) Changefreq

	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Plugin is the configured generator, ready to be triggered.
type Plugin struct {
	gen *generate.Generator
}

// New validates and normalizes the options and returns a ready Plugin.
// Setup-time configuration errors are returned here; everything after
// New follows the never-fail policy.
func New(opts Options) (*Plugin, error) {
	cfg := config.Default(opts.BaseURL)
	if opts.RouteTreePath != "" {
		cfg.RouteTreePath = opts.RouteTreePath
	}
	if opts.Enabled != nil {
		cfg.Enabled = *opts.Enabled
	}
	if opts.IncludeRobots != nil {
		cfg.IncludeRobots = *opts.IncludeRobots
	}
	cfg.AdditionalRoutes = opts.AdditionalRoutes
	cfg.ExcludeRoutes = opts.ExcludeRoutes
	cfg.GetRoutePriority = opts.GetRoutePriority
	cfg.GetRouteChangefreq = opts.GetRouteChangefreq

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	for _, warning := range cfg.Normalize().Warnings {
		logger.Warn(warning)
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = "dist"
	}

	return &Plugin{
		gen: generate.NewGenerator(cfg, outDir).WithLogger(logger),
	}, nil
}

// Name identifies the plugin to host build tooling.
func (p *Plugin) Name() string { return "vite-sitemap-plugin" }

// Run generates sitemap.xml and robots.txt. It is the no-argument
// trigger invoked once per build; all failures are logged and swallowed.
func (p *Plugin) Run() { p.gen.Run() }

// Bool is a convenience for the tri-state option fields.
func Bool(b bool) *bool { return &b }
