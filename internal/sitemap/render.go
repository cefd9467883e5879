package sitemap

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/mvp-kit/vite-sitemap-plugin/internal/seo"
)

// Render serializes records into a urlset document. Each <loc> is the
// plain concatenation of baseURL and the route path; the caller is
// responsible for baseURL carrying no trailing slash. Records are
// emitted in the order given, no sorting, no validation of baseURL.
func Render(records []seo.RouteRecord, baseURL string) (string, error) {
	set := URLSet{
		Xmlns: NSSitemap,
		URLs:  make([]URL, 0, len(records)),
	}
	for _, r := range records {
		set.URLs = append(set.URLs, URL{
			Loc:        baseURL + r.Path,
			LastMod:    r.LastMod,
			ChangeFreq: string(r.Changefreq),
			Priority:   strconv.FormatFloat(r.Priority, 'f', 1, 64),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal urlset: %w", err)
	}
	return xml.Header + string(body) + "\n", nil
}

// RenderRobots produces the fixed robots.txt document: a permissive
// default group followed by the sitemap location.
func RenderRobots(baseURL string) string {
	lines := []string{
		"User-agent: *",
		"Allow: /",
		"",
		"Sitemap: " + baseURL + "/sitemap.xml",
	}
	return strings.Join(lines, "\n") + "\n"
}
