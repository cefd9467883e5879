// Package sitemap serializes enriched route records into the two static
// output formats: the sitemaps.org urlset document and robots.txt.
package sitemap

import "encoding/xml"

// NSSitemap is the sitemaps.org 0.9 schema namespace.
const NSSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URL represents a single page entry in a sitemap <urlset>.
// Field order defines element order: loc, lastmod, changefreq, priority.
type URL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod,omitempty"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   string   `xml:"priority,omitempty"`
}

// URLSet is the root element of a sitemap document.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}
