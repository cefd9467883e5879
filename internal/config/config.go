// Package config holds the plugin configuration: YAML loading with
// environment expansion, defaults, normalization, and validation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	errs "github.com/mvp-kit/vite-sitemap-plugin/internal/errors"
	"github.com/mvp-kit/vite-sitemap-plugin/internal/seo"
)

// DefaultRouteTreePath is where TanStack Router generates its manifest.
const DefaultRouteTreePath = "src/routeTree.gen.ts"

// Config is the recognized option surface. Supplied once at setup and
// read-only thereafter; lifetime is one build invocation.
type Config struct {
	// BaseURL is the absolute site URL prefixed to every route in
	// <loc> entries. Required. No URL well-formedness validation is
	// performed; a trailing slash is trimmed during normalization.
	BaseURL string `yaml:"base_url"`

	// RouteTreePath locates the generated route manifest, resolved
	// against the working directory at generation time.
	RouteTreePath string `yaml:"route_tree_path"`

	// Enabled gates the whole run. Defaults to true.
	Enabled bool `yaml:"enabled"`

	// IncludeRobots controls robots.txt emission. Defaults to true.
	IncludeRobots bool `yaml:"include_robots"`

	// AdditionalRoutes are appended after extracted routes, in order.
	AdditionalRoutes []string `yaml:"additional_routes"`

	// ExcludeRoutes are removed from the final list by exact path match.
	ExcludeRoutes []string `yaml:"exclude_routes"`

	// Library-only overrides; not representable in YAML.
	GetRoutePriority   seo.PriorityFunc   `yaml:"-"`
	GetRouteChangefreq seo.ChangefreqFunc `yaml:"-"`
}

// UnmarshalYAML decodes with tri-state booleans so that omitted
// enabled/include_robots fields default to true rather than to the Go
// zero value.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type rawConfig struct {
		BaseURL          string   `yaml:"base_url"`
		RouteTreePath    string   `yaml:"route_tree_path"`
		Enabled          *bool    `yaml:"enabled"`
		IncludeRobots    *bool    `yaml:"include_robots"`
		AdditionalRoutes []string `yaml:"additional_routes"`
		ExcludeRoutes    []string `yaml:"exclude_routes"`
	}
	var raw rawConfig
	if err := value.Decode(&raw); err != nil {
		return err
	}
	c.BaseURL = raw.BaseURL
	c.RouteTreePath = raw.RouteTreePath
	c.Enabled = raw.Enabled == nil || *raw.Enabled
	c.IncludeRobots = raw.IncludeRobots == nil || *raw.IncludeRobots
	c.AdditionalRoutes = raw.AdditionalRoutes
	c.ExcludeRoutes = raw.ExcludeRoutes
	return nil
}

// Default returns a ready configuration for the given base URL.
func Default(baseURL string) *Config {
	return &Config{
		BaseURL:       baseURL,
		RouteTreePath: DefaultRouteTreePath,
		Enabled:       true,
		IncludeRobots: true,
	}
}

// Load reads configuration from the specified file. Environment
// variables from .env/.env.local are loaded first (without overriding
// the process environment) and ${VAR} references in the YAML are
// expanded before unmarshaling.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.RouteTreePath == "" {
		c.RouteTreePath = DefaultRouteTreePath
	}
}

// Validate checks required fields and route shape. URL well-formedness
// of BaseURL is deliberately not checked.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errs.ConfigRequired("base_url")
	}
	for _, route := range c.AdditionalRoutes {
		if len(route) == 0 || route[0] != '/' {
			return errs.ValidationFailed("additional_routes",
				fmt.Sprintf("route %q must start with '/'", route))
		}
	}
	for _, route := range c.ExcludeRoutes {
		if len(route) == 0 || route[0] != '/' {
			return errs.ValidationFailed("exclude_routes",
				fmt.Sprintf("route %q must start with '/'", route))
		}
	}
	return nil
}
