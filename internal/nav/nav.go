package nav

import (
	"strings"

	"finitefield.org/lumen-web/internal/catalog"
)

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Target string // in-page id without '#', empty for placeholder or external links
}

// Group is a titled column of footer links.
type Group struct {
	Title string
	Items []RenderedItem
}

// Build renders header navigation in catalog order.
func Build(links []catalog.NavLink) []RenderedItem {
	items := make([]RenderedItem, 0, len(links))
	for _, l := range links {
		items = append(items, item(l.Href, l.Label))
	}
	return items
}

// Links renders a flat list of generic links.
func Links(links []catalog.Link) []RenderedItem {
	items := make([]RenderedItem, 0, len(links))
	for _, l := range links {
		items = append(items, item(l.Href, l.Label))
	}
	return items
}

// FooterGroups renders footer columns in catalog order.
func FooterGroups(groups []catalog.FooterGroup) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, Group{Title: g.Title, Items: Links(g.Links)})
	}
	return out
}

func item(href, label string) RenderedItem {
	return RenderedItem{Href: href, Label: label, Target: targetOf(href)}
}

// targetOf extracts the fragment id from an in-page href. "#" alone is a placeholder.
func targetOf(href string) string {
	id, ok := strings.CutPrefix(strings.TrimSpace(href), "#")
	if !ok {
		return ""
	}
	return id
}
