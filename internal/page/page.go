// Package page composes the landing page from a catalog and renders it with the
// embedded html/template layout.
//
// Composition is a single synchronous pass: Compose copies what it needs out of
// the catalog into a Document and never writes back. Section order is fixed by
// the layout; item order is the catalog's declaration order.
package page

import (
	"fmt"
	"html/template"
	"time"

	"finitefield.org/lumen-web/internal/catalog"
	"finitefield.org/lumen-web/internal/markup"
	"finitefield.org/lumen-web/internal/nav"
	"finitefield.org/lumen-web/internal/seo"
)

// Section names as emitted in data-section attributes, in render order.
const (
	SectionHeader      = "header"
	SectionHero        = "hero"
	SectionFeatured    = "featured"
	SectionHighlights  = "highlights"
	SectionCollections = "collections"
	SectionStories     = "stories"
	SectionNewsletter  = "newsletter"
	SectionFooter      = "footer"
)

// SectionOrder is the order sections appear in the rendered document.
var SectionOrder = []string{
	SectionHeader,
	SectionHero,
	SectionFeatured,
	SectionHighlights,
	SectionCollections,
	SectionStories,
	SectionNewsletter,
	SectionFooter,
}

// Fixed interface copy.
const (
	signInLabel      = "Sign in"
	bagLabel         = "Bag (0)"
	addToBagLabel    = "Add to bag"
	highlightCaption = "Included with every order"
	discoverLabel    = "Discover now"
	readMoreLabel    = "Read the story"

	// NewsletterAnchor is the id of the newsletter section; form submissions
	// redirect back to it.
	NewsletterAnchor = "newsletter"
	// NewsletterInputName is the form field carrying the email address.
	NewsletterInputName = "email"
	newsletterInputID   = "newsletter-email"
)

var fillSizes = "(min-width: 1024px) 50vw, 100vw"

// Options carries the render-time inputs that are not catalog content.
type Options struct {
	// Now is the render time; the zero value means time.Now().
	Now        time.Time
	Site       seo.Site
	FormAction string
	Newsletter NewsletterState
}

// Document is the fully composed landing page.
type Document struct {
	Meta        seo.Meta
	Header      Header
	Hero        Hero
	Featured    Featured
	Highlights  Highlights
	Collections Collections
	Stories     Stories
	Newsletter  Newsletter
	Footer      Footer
}

// Header is the sticky top bar: brand mark, section links and the stub actions.
type Header struct {
	BrandMark   string
	Nav         []nav.RenderedItem
	SignInLabel string
	BagLabel    string
}

// Hero is the opening banner with its two section CTAs and three stats.
type Hero struct {
	Eyebrow      string
	Headline     string
	Subhead      template.HTML
	PrimaryCTA   nav.RenderedItem
	SecondaryCTA nav.RenderedItem
	Stats        []catalog.Stat
	Image        Picture
}

// Featured is the product grid section.
type Featured struct {
	ID      string
	Title   string
	Intro   string
	ViewAll nav.RenderedItem
	Cards   []ProductCard
}

// ProductCard renders one product. Badges and Swatches are nil when the product
// defines none, so the template omits the wrapper entirely.
type ProductCard struct {
	ID          int
	Name        string
	Description string
	Price       string
	Image       Picture
	Badges      []string
	Swatches    []string
	AddLabel    string
}

// Highlights is the banner of service promises.
type Highlights struct {
	ID    string
	Items []HighlightItem
}

// HighlightItem is one highlight with the shared caption.
type HighlightItem struct {
	Title       string
	Description string
	Caption     string
}

// Collections is the grid of full-bleed collection tiles.
type Collections struct {
	ID    string
	Tiles []CollectionTile
}

// CollectionTile is one collection image with its overlaid copy.
type CollectionTile struct {
	Title       string
	Description string
	Image       Picture
	ActionLabel string
}

// Stories pairs the journal entries with the testimonial panel.
type Stories struct {
	ID           string
	JournalTitle string
	Entries      []JournalCard
	PullQuote    string
	Body         template.HTML
	Testimonials []Quote
}

// JournalCard is one journal excerpt.
type JournalCard struct {
	Date     string
	Title    string
	Excerpt  template.HTML
	Href     string
	ReadMore string
}

// Quote is one testimonial.
type Quote struct {
	Text template.HTML
	Name string
	Role string
}

// Newsletter is the sign-up section and its form contract.
type Newsletter struct {
	ID          string
	Title       string
	Body        template.HTML
	Action      string
	InputID     string
	InputName   string
	Label       string
	Placeholder string
	Submit      string
	State       NewsletterState
}

// Footer holds the link groups, legal links and copyright line.
type Footer struct {
	BrandMark string
	Tagline   string
	Groups    []nav.Group
	Legal     []nav.RenderedItem
	Year      int
	Copyright string
}

// Compose maps the catalog onto the page sections.
func Compose(c catalog.Catalog, opts Options) Document {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	year := now.Year()

	doc := Document{
		Meta: seo.Build(opts.Site, c),
		Header: Header{
			BrandMark:   c.Brand.Mark,
			Nav:         nav.Build(c.Navigation),
			SignInLabel: signInLabel,
			BagLabel:    bagLabel,
		},
		Hero: Hero{
			Eyebrow:      c.Hero.Eyebrow,
			Headline:     c.Hero.Headline,
			Subhead:      markup.Inline(c.Hero.Subhead),
			PrimaryCTA:   nav.Links([]catalog.Link{c.Hero.PrimaryCTA})[0],
			SecondaryCTA: nav.Links([]catalog.Link{c.Hero.SecondaryCTA})[0],
			Stats:        append([]catalog.Stat(nil), c.Hero.Stats...),
			Image:        IntrinsicPicture(c.Hero.Image),
		},
		Featured: Featured{
			ID:    catalog.AnchorFeatured,
			Title: c.Featured.Title,
			Intro: c.Featured.Intro,
			Cards: make([]ProductCard, 0, len(c.Products)),
		},
		Highlights: Highlights{
			ID:    catalog.AnchorHighlights,
			Items: make([]HighlightItem, 0, len(c.Highlights)),
		},
		Collections: Collections{
			ID:    catalog.AnchorCollections,
			Tiles: make([]CollectionTile, 0, len(c.Collections)),
		},
		Stories: Stories{
			ID:           catalog.AnchorStories,
			JournalTitle: c.Story.JournalTitle,
			Entries:      make([]JournalCard, 0, len(c.Journal)),
			PullQuote:    c.Story.PullQuote,
			Body:         markup.Inline(c.Story.Body),
			Testimonials: make([]Quote, 0, len(c.Testimonials)),
		},
		Newsletter: Newsletter{
			ID:          NewsletterAnchor,
			Title:       c.Newsletter.Title,
			Body:        markup.Inline(c.Newsletter.Body),
			Action:      opts.FormAction,
			InputID:     newsletterInputID,
			InputName:   NewsletterInputName,
			Label:       c.Newsletter.InputLabel,
			Placeholder: c.Newsletter.Placeholder,
			Submit:      c.Newsletter.Submit,
			State:       opts.Newsletter,
		},
		Footer: Footer{
			BrandMark: c.Brand.Mark,
			Tagline:   c.Brand.Tagline,
			Groups:    nav.FooterGroups(c.Footer.Groups),
			Legal:     nav.Links(c.Footer.Legal),
			Year:      year,
			Copyright: Copyright(year, c.Brand.Name),
		},
	}
	if c.Featured.ViewAll != nil {
		doc.Featured.ViewAll = nav.Links([]catalog.Link{*c.Featured.ViewAll})[0]
	}

	for _, p := range c.Products {
		card := ProductCard{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Image:       FillPicture(p.Image, p.Name),
			AddLabel:    addToBagLabel,
		}
		if p.HasBadges() {
			card.Badges = append([]string(nil), p.Badges...)
		}
		if p.HasColors() {
			card.Swatches = append([]string(nil), p.Colors...)
		}
		doc.Featured.Cards = append(doc.Featured.Cards, card)
	}
	for _, h := range c.Highlights {
		doc.Highlights.Items = append(doc.Highlights.Items, HighlightItem{
			Title:       h.Title,
			Description: h.Description,
			Caption:     highlightCaption,
		})
	}
	for _, col := range c.Collections {
		doc.Collections.Tiles = append(doc.Collections.Tiles, CollectionTile{
			Title:       col.Title,
			Description: col.Description,
			Image:       FillPicture(col.Image, col.Title),
			ActionLabel: discoverLabel,
		})
	}
	for _, e := range c.Journal {
		doc.Stories.Entries = append(doc.Stories.Entries, JournalCard{
			Date:     e.Date,
			Title:    e.Title,
			Excerpt:  markup.Inline(e.Excerpt),
			Href:     e.Link,
			ReadMore: readMoreLabel,
		})
	}
	for _, t := range c.Testimonials {
		doc.Stories.Testimonials = append(doc.Stories.Testimonials, Quote{
			Text: markup.Inline(t.Quote),
			Name: t.Name,
			Role: t.Role,
		})
	}
	return doc
}

// Copyright formats the footer copyright line.
func Copyright(year int, brand string) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", year, brand)
}
