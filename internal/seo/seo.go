// Package seo builds document-head metadata: title, description, canonical URL,
// Open Graph and Twitter cards, and JSON-LD payloads.
package seo

import (
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/language"

	"finitefield.org/lumen-web/internal/catalog"
)

type ImageRef struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

type OpenGraph struct {
	Title       string
	Description string
	URL         string
	SiteName    string
	Type        string
	Locale      string
	Image       ImageRef
}

type Twitter struct {
	Card        string
	Title       string
	Description string
	Images      []string
}

// Meta is consumed by the layout's <head>.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Lang        string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []template.JS
}

// Site carries the static key/value pairs describing the storefront to crawlers
// and social previews.
type Site struct {
	URL                string
	Name               string
	DefaultTitle       string
	TitleTemplate      string // must contain a single %s
	Description        string
	OGDescription      string
	TwitterDescription string
	Image              ImageRef
	Locale             language.Tag
}

// DefaultSite returns the lumen storefront metadata rooted at siteURL.
func DefaultSite(siteURL string, locale language.Tag) Site {
	return Site{
		URL:           strings.TrimRight(siteURL, "/"),
		Name:          "lumen",
		DefaultTitle:  "lumen — Modern Living Essentials",
		TitleTemplate: "%s · lumen",
		Description: "Discover lumen, a modern commerce experience blending tactile technology, " +
			"sculptural lighting, and sustainable home essentials.",
		OGDescription: "Experience curated objects for calm and considered living. " +
			"Shop lighting, audio, and home tech built for modern spaces.",
		TwitterDescription: "Curated home technology and lighting designed for mindful spaces.",
		Image: ImageRef{
			URL:    "https://images.unsplash.com/photo-1616628188505-404b4be1524a?auto=format&fit=crop&w=1200&q=80",
			Width:  1200,
			Height: 800,
			Alt:    "Modern interior with sculptural lighting",
		},
		Locale: locale,
	}
}

// Title applies the title template. An empty page title yields the default title.
func (s Site) Title(page string) string {
	page = strings.TrimSpace(page)
	if page == "" || s.TitleTemplate == "" {
		return s.DefaultTitle
	}
	return fmt.Sprintf(s.TitleTemplate, page)
}

// Build assembles head metadata for the landing page.
func Build(s Site, c catalog.Catalog) Meta {
	title := s.Title("")
	m := Meta{
		Title:       title,
		Description: s.Description,
		Canonical:   s.URL + "/",
		Lang:        HTMLLang(s.Locale),
		OG: OpenGraph{
			Title:       title,
			Description: s.OGDescription,
			URL:         s.URL,
			SiteName:    s.Name,
			Type:        "website",
			Locale:      OGLocale(s.Locale),
			Image:       s.Image,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       title,
			Description: s.TwitterDescription,
			Images:      []string{s.Image.URL},
		},
	}
	m.JSONLD = append(m.JSONLD,
		JSON(Organization(s.Name, s.URL, "")),
		JSON(WebSite(s.Name, s.URL, "")),
	)
	for _, p := range c.Products {
		m.JSONLD = append(m.JSONLD, JSON(Product(p.Name, p.Description, s.URL+"/#"+catalog.AnchorFeatured, p.Image, fmt.Sprint(p.ID))))
	}
	for _, e := range c.Journal {
		m.JSONLD = append(m.JSONLD, JSON(Article(e.Title, "", "", s.Name, isoDate(e.Date))))
	}
	return m
}

// HTMLLang returns the primary language subtag for <html lang>.
func HTMLLang(tag language.Tag) string {
	if tag == language.Und {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}

// OGLocale formats tag as language_TERRITORY, e.g. en_US.
func OGLocale(tag language.Tag) string {
	if tag == language.Und {
		return "en_US"
	}
	base, _ := tag.Base()
	region, conf := tag.Region()
	if conf == language.No {
		return base.String()
	}
	return base.String() + "_" + region.String()
}
