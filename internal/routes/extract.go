// Package routes extracts route path strings from a generated route
// manifest (TanStack-Router-style routeTree.gen.ts). The manifest's
// exact shape is not guaranteed, so extraction is an ordered cascade of
// pattern-matching strategies with a safe fallback. Extraction never
// fails: on any malformed or missing input it degrades to ["/"].
package routes

import (
	"log/slog"
	"os"
	"regexp"

	errs "github.com/mvp-kit/vite-sitemap-plugin/internal/errors"
	"github.com/mvp-kit/vite-sitemap-plugin/internal/logfields"
)

// Strategy identifies which cascade step produced the route list.
type Strategy string

const (
	// StrategyUnion matched a fullPaths declaration bound to a
	// union-of-string-literals type.
	StrategyUnion Strategy = "union"
	// StrategySingle matched a fullPaths declaration bound to one
	// quoted literal at the end of the manifest. Kept for input
	// compatibility; real manifests are caught by StrategyUnion first.
	StrategySingle Strategy = "single"
	// StrategyInterface matched the FileRoutesByFullPath interface
	// block and collected its quoted keys.
	StrategyInterface Strategy = "interface"
	// StrategyFallback means nothing matched and ["/"] was returned.
	StrategyFallback Strategy = "fallback"
)

var (
	fullPathsLine   = regexp.MustCompile(`fullPaths[ \t]*:[ \t]*(.+)`)
	quotedLiteral   = regexp.MustCompile("['\"`]([^'\"`]*)['\"`]")
	fullPathsSingle = regexp.MustCompile("fullPaths\\s*:\\s*['\"`]([^'\"`]+)['\"`]\\s*$")
	interfaceBlock  = regexp.MustCompile(`interface\s+FileRoutesByFullPath\s*\{([^}]+)\}`)
	interfaceKey    = regexp.MustCompile("['\"`]([^'\"`]*)['\"`]\\s*:")
)

// Fallback is the route list used when no strategy matches.
var Fallback = []string{"/"}

// Extractor runs the extraction cascade, reporting diagnostics through
// an injected logger so callers stay testable.
type Extractor struct {
	logger *slog.Logger
}

// New creates an Extractor. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// FromFile reads the manifest at path and extracts its routes. A missing
// or unreadable file degrades to the fallback list with a diagnostic;
// no failure ever reaches the caller.
func (e *Extractor) FromFile(path string) ([]string, Strategy) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			e.logger.Warn("route manifest not found, falling back to root route",
				logfields.Manifest(path),
				logfields.Error(errs.ManifestMissing(path)))
		} else {
			e.logger.Warn("route manifest unreadable, falling back to root route",
				logfields.Manifest(path),
				logfields.Error(errs.ManifestUnreadable(path, err)))
		}
		return Fallback, StrategyFallback
	}
	return e.Extract(string(content))
}

// Extract runs the cascade over manifest content. First successful
// strategy wins. Duplicates are preserved as found; deduplication is
// the generator's job.
func (e *Extractor) Extract(content string) ([]string, Strategy) {
	if paths := extractUnion(content); len(paths) > 0 {
		return paths, StrategyUnion
	}
	if path, ok := extractSingle(content); ok {
		return []string{path}, StrategySingle
	}
	if paths := extractInterfaceKeys(content); len(paths) > 0 {
		return paths, StrategyInterface
	}
	e.logger.Warn("no extraction strategy matched manifest content, falling back to root route",
		logfields.Error(errs.ExtractionAmbiguous()))
	return Fallback, StrategyFallback
}

// extractUnion finds a fullPaths declaration and collects every quoted
// literal on the remainder of that line, left to right. Literals may
// contain '/' and '-'; surrounding quotes are stripped.
func extractUnion(content string) []string {
	m := fullPathsLine.FindStringSubmatch(content)
	if m == nil {
		return nil
	}
	matches := quotedLiteral.FindAllStringSubmatch(m[1], -1)
	if len(matches) == 0 {
		return nil
	}
	paths := make([]string, 0, len(matches))
	for _, lit := range matches {
		paths = append(paths, lit[1])
	}
	return paths
}

// extractSingle matches a fullPaths declaration bound to exactly one
// quoted literal at the end of the content.
func extractSingle(content string) (string, bool) {
	m := fullPathsSingle.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// extractInterfaceKeys collects quoted keys (each followed by a colon)
// from the FileRoutesByFullPath interface body, in declaration order.
func extractInterfaceKeys(content string) []string {
	m := interfaceBlock.FindStringSubmatch(content)
	if m == nil {
		return nil
	}
	matches := interfaceKey.FindAllStringSubmatch(m[1], -1)
	if len(matches) == 0 {
		return nil
	}
	paths := make([]string, 0, len(matches))
	for _, key := range matches {
		paths = append(paths, key[1])
	}
	return paths
}
