package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyManifest   = "manifest"
	KeyOutputDir  = "output_dir"
	KeyBaseURL    = "base_url"
	KeyRouteCount = "route_count"
	KeyStrategy   = "strategy"
	KeyFile       = "file"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Manifest(path string) slog.Attr  { return slog.String(KeyManifest, path) }
func OutputDir(dir string) slog.Attr  { return slog.String(KeyOutputDir, dir) }
func BaseURL(u string) slog.Attr      { return slog.String(KeyBaseURL, u) }
func RouteCount(n int) slog.Attr      { return slog.Int(KeyRouteCount, n) }
func Strategy(name string) slog.Attr  { return slog.String(KeyStrategy, name) }
func File(path string) slog.Attr      { return slog.String(KeyFile, path) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
