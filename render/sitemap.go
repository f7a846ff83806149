package render

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bookclub-site/site"
)

// URLSet is the sitemap.xml document root.
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapURL is one <url> entry.
type SitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap writes sitemap.xml covering the home page and every page of
// the plan.
func WriteSitemap(path, siteURL string, plan []site.PageSpec, lastMod string) error {
	base := strings.TrimSuffix(siteURL, "/")
	set := &URLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []SitemapURL{{Loc: base + "/", LastMod: lastMod}},
	}
	for _, spec := range plan {
		set.URLs = append(set.URLs, SitemapURL{Loc: base + spec.Path + "/", LastMod: lastMod})
	}

	raw, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create sitemap directory: %w", err)
	}
	raw = append([]byte(xml.Header), raw...)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write sitemap: %w", err)
	}
	return nil
}
