// Package seo attaches sitemap metadata (priority, change frequency,
// last-modified date) to extracted route paths.
package seo

import (
	"strings"
	"time"
)

// Changefreq is the sitemap-protocol update-frequency hint for a route.
type Changefreq string

const (
	Always  Changefreq = "always"
	Hourly  Changefreq = "hourly"
	Daily   Changefreq = "daily"
	Weekly  Changefreq = "weekly"
	Monthly Changefreq = "monthly"
	Yearly  Changefreq = "yearly"
	Never   Changefreq = "never"
)

// Valid reports whether c is one of the sitemap-protocol values.
func (c Changefreq) Valid() bool {
	switch c {
	case Always, Hourly, Daily, Weekly, Monthly, Yearly, Never:
		return true
	}
	return false
}

// RouteRecord is one enriched sitemap entry. Records are created fresh
// each run and discarded after serialization.
type RouteRecord struct {
	Path       string
	Priority   float64
	Changefreq Changefreq
	LastMod    string // YYYY-MM-DD, identical for every record of one run
}

// PriorityFunc overrides the default priority rule for a route.
// The second return value reports whether the override applies; false
// falls back to the default rule for that route.
type PriorityFunc func(route string) (float64, bool)

// ChangefreqFunc overrides the default change-frequency rule for a route.
// An empty return value falls back to the default rule.
type ChangefreqFunc func(route string) Changefreq

// Options configures enrichment. The zero value yields the default
// rules with the current time as build date.
type Options struct {
	Priority   PriorityFunc
	Changefreq ChangefreqFunc
	BuildTime  time.Time
}

// Enrich produces one RouteRecord per route, order preserved, duplicates
// allowed (deduplication happens upstream in the generator). The build
// date is captured once for the whole invocation.
func Enrich(routes []string, opts Options) []RouteRecord {
	buildTime := opts.BuildTime
	if buildTime.IsZero() {
		buildTime = time.Now()
	}
	lastMod := buildTime.Format("2006-01-02")

	records := make([]RouteRecord, 0, len(routes))
	for _, route := range routes {
		records = append(records, RouteRecord{
			Path:       route,
			Priority:   priorityFor(route, opts.Priority),
			Changefreq: changefreqFor(route, opts.Changefreq),
			LastMod:    lastMod,
		})
	}
	return records
}

func priorityFor(route string, override PriorityFunc) float64 {
	if override != nil {
		if p, ok := override(route); ok {
			return p
		}
	}
	switch {
	case route == "/":
		return 1.0
	case strings.Contains(route, "/blog") || strings.Contains(route, "/docs"):
		return 0.9
	case strings.Contains(route, "/api") || strings.Contains(route, "/reference"):
		return 0.7
	default:
		return 0.8
	}
}

func changefreqFor(route string, override ChangefreqFunc) Changefreq {
	if override != nil {
		if cf := override(route); cf != "" {
			return cf
		}
	}
	switch {
	case route == "/":
		return Daily
	case strings.Contains(route, "/blog") || strings.Contains(route, "/docs"):
		return Weekly
	case strings.Contains(route, "/api") || strings.Contains(route, "/reference"):
		return Monthly
	default:
		return Weekly
	}
}
