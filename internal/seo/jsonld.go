package seo

import (
	"encoding/json"
	"html/template"
	"time"
)

// JSON marshals v for a <script type="application/ld+json"> block. It returns an
// empty payload on error. encoding/json escapes <, > and &, so the result is safe
// inside a script element.
func JSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.JS(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// WebSite returns a minimal WebSite schema with optional SearchAction.
func WebSite(name, url, searchActionURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if searchActionURL != "" {
		m["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      searchActionURL + "{search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return m
}

// Product returns a minimal product schema payload. Prices are display strings in
// the catalog, so no Offer is emitted.
func Product(name, description, url, imageURL, sku string) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        name,
		"description": description,
	}
	if url != "" {
		m["url"] = url
	}
	if imageURL != "" {
		m["image"] = imageURL
	}
	if sku != "" {
		m["sku"] = sku
	}
	return m
}

// Article returns a minimal Article schema payload.
func Article(headline, url, imageURL, authorName, datePublished string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Article",
		"headline": headline,
	}
	if url != "" {
		m["url"] = url
	}
	if imageURL != "" {
		m["image"] = imageURL
	}
	if authorName != "" {
		m["author"] = map[string]any{"@type": "Organization", "name": authorName}
	}
	if datePublished != "" {
		m["datePublished"] = datePublished
	}
	return m
}

// isoDate converts a display date such as "May 28, 2024" to 2024-05-28. Unparseable
// dates are dropped rather than guessed.
func isoDate(display string) string {
	t, err := time.Parse("Jan 2, 2006", display)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}
