package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NormalizeResult reports adjustments made to user-supplied values.
type NormalizeResult struct {
	Warnings []string
}

// Normalize adjusts user-supplied values to the shapes the rest of the
// pipeline assumes: BaseURL without a trailing slash (the serializer
// concatenates verbatim) and a cleaned manifest path. Every change is
// reported as a warning so surprises stay visible in logs.
func (c *Config) Normalize() NormalizeResult {
	var res NormalizeResult

	if trimmed := strings.TrimRight(c.BaseURL, "/"); trimmed != c.BaseURL {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("base_url %q had trailing slash removed (%q)", c.BaseURL, trimmed))
		c.BaseURL = trimmed
	}

	if c.RouteTreePath != "" {
		if cleaned := filepath.Clean(c.RouteTreePath); cleaned != c.RouteTreePath {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("route_tree_path %q cleaned to %q", c.RouteTreePath, cleaned))
			c.RouteTreePath = cleaned
		}
	}

	return res
}
