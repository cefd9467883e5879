package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mvp-kit/vite-sitemap-plugin/internal/config"
	"github.com/mvp-kit/vite-sitemap-plugin/internal/generate"
	"github.com/mvp-kit/vite-sitemap-plugin/internal/routes"
	"github.com/mvp-kit/vite-sitemap-plugin/internal/seo"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Generate struct {
		Output string `short:"o" help:"Build output directory for generated files" default:"./dist"`
	} `cmd:"" help:"Generate sitemap.xml and robots.txt from the route manifest"`

	Routes struct{} `cmd:"" help:"Extract and print enriched routes without writing files"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`
}

func main() {
	ctx := kong.Parse(&CLI)

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "generate":
		cfg := loadConfig()
		runGenerate(cfg, CLI.Generate.Output)
	case "routes":
		cfg := loadConfig()
		runRoutes(cfg)
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Configuration file written", "path", CLI.Config)
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	for _, warning := range cfg.Normalize().Warnings {
		slog.Warn(warning)
	}
	return cfg
}

// runGenerate triggers one generation run. Generation itself never
// fails the process: write errors are logged by the generator and the
// exit code stays zero, matching the plugin's never-block-a-build policy.
func runGenerate(cfg *config.Config, outputDir string) {
	slog.Info("Starting sitemap generation",
		"output", outputDir,
		"manifest", cfg.RouteTreePath,
		"base_url", cfg.BaseURL)

	generate.NewGenerator(cfg, outputDir).Run()
}

// runRoutes prints what the sitemap would contain, without writing.
func runRoutes(cfg *config.Config) {
	extractor := routes.New(slog.Default())
	extracted, strategy := extractor.FromFile(cfg.RouteTreePath)
	slog.Info("Routes extracted", "strategy", string(strategy), "count", len(extracted))

	final := generate.MergeRoutes(extracted, cfg.AdditionalRoutes, cfg.ExcludeRoutes)
	records := seo.Enrich(final, seo.Options{
		Priority:   cfg.GetRoutePriority,
		Changefreq: cfg.GetRouteChangefreq,
	})

	for _, r := range records {
		slog.Info("  Route",
			"path", r.Path,
			"priority", r.Priority,
			"changefreq", string(r.Changefreq),
			"lastmod", r.LastMod)
	}
	slog.Info("Discovery completed", "total_routes", len(records))
}
