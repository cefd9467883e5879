package config

import (
	"fmt"
	"os"
)

const starterConfig = `# vite-sitemap-plugin configuration

# Absolute site URL, no trailing slash. Required.
base_url: https://example.com

# Generated route manifest. ${VAR} references are expanded from the
# environment (.env/.env.local are loaded first).
route_tree_path: src/routeTree.gen.ts

# enabled: true
# include_robots: true

# Routes to append after the extracted ones, in order:
# additional_routes:
#   - /newsletter
#   - /legal/imprint

# Routes to drop from the final sitemap:
# exclude_routes:
#   - /admin
`

// Init writes a commented starter configuration file. Refuses to
// overwrite an existing file unless force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}
