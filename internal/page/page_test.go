package page

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"finitefield.org/lumen-web/internal/catalog"
	"finitefield.org/lumen-web/internal/seo"
)

var renderTime = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func testOptions() Options {
	return Options{
		Now:        renderTime,
		Site:       seo.DefaultSite("https://shop.example.com", language.AmericanEnglish),
		FormAction: "/newsletter",
	}
}

func renderCatalog(t *testing.T, c catalog.Catalog, opts Options) []byte {
	t.Helper()

	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, Compose(c, opts)))
	return buf.Bytes()
}

func parseHTML(t *testing.T, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err)
	return doc
}

func texts(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}

func TestProductCardsRenderBadgesAndSwatchesInOrder(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	doc := parseHTML(t, renderCatalog(t, c, testOptions()))

	cards := doc.Find("#featured article.product-card")
	require.Equal(t, len(c.Products), cards.Length())

	cards.Each(func(i int, card *goquery.Selection) {
		p := c.Products[i]
		require.Equal(t, fmt.Sprint(p.ID), card.AttrOr("data-product-id", ""), "cards follow catalog order")

		if len(p.Badges) == 0 {
			require.Equal(t, 0, card.Find(".badges").Length(), "badge wrapper omitted for %s", p.Name)
		}
		require.Equal(t, p.Badges, texts(card.Find(".badge")))

		var colors []string
		card.Find(".swatch").Each(func(_ int, s *goquery.Selection) {
			colors = append(colors, s.AttrOr("data-color", ""))
		})
		if len(p.Colors) == 0 {
			require.Empty(t, colors)
			require.Equal(t, 0, card.Find(".swatches").Length())
		} else {
			require.Equal(t, p.Colors, colors)
		}
	})
}

func TestProductWithoutOptionalListsOmitsWrappers(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	c.Products[0].Badges = []string{}
	c.Products[0].Colors = nil
	doc := parseHTML(t, renderCatalog(t, c, testOptions()))

	card := doc.Find(`article[data-product-id="1"]`)
	require.Equal(t, 1, card.Length())
	require.Equal(t, 0, card.Find(".badges, .badge").Length())
	require.Equal(t, 0, card.Find(".swatches, .swatch").Length())
}

func TestAetherCardShowsLiteralBadgeAndPrice(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderCatalog(t, catalog.Default(), testOptions()))
	card := doc.Find(`article[data-product-id="1"]`)

	require.Equal(t, "Aether Series Headphones", strings.TrimSpace(card.Find(".product-name").Text()))
	require.Equal(t, []string{"New Arrival"}, texts(card.Find(".badge")))
	require.Equal(t, "$249", strings.TrimSpace(card.Find(".price").Text()))
	require.Equal(t, "Add to bag", strings.TrimSpace(card.Find("button").Text()))
}

func TestSectionAnchorsAppearOnceAndAreLinked(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderCatalog(t, catalog.Default(), testOptions()))

	for _, id := range catalog.SectionAnchors {
		require.Equal(t, 1, doc.Find("#"+id).Length(), "id %q must be unique", id)
		require.Equal(t, "section", goquery.NodeName(doc.Find("#"+id)))
		require.GreaterOrEqual(t, doc.Find(`a[href="#`+id+`"]`).Length(), 1, "id %q must be linked", id)
	}
}

func TestHeaderNavigationFollowsCatalogOrder(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderCatalog(t, catalog.Default(), testOptions()))
	header := doc.Find(`header[data-section="header"]`)

	require.Equal(t, []string{"Featured", "Collections", "Highlights", "Stories"}, texts(header.Find("nav a")))
	require.Equal(t, []string{"Sign in", "Bag (0)"}, texts(header.Find(".header-actions button")))
	require.Equal(t, "lumen.", strings.TrimSpace(header.Find("a.brand").Text()))
}

func sectionOrder(doc *goquery.Document) []string {
	var got []string
	doc.Find("[data-section]").Each(func(_ int, s *goquery.Selection) {
		got = append(got, s.AttrOr("data-section", ""))
	})
	return got
}

func TestSectionOrderIsFixed(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderCatalog(t, catalog.Default(), testOptions()))
	require.Equal(t, SectionOrder, sectionOrder(doc))
}

func TestSectionOrderIsFixedForSparseCatalog(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	c.Products = nil
	c.Highlights = nil
	c.Collections = nil
	c.Journal = nil
	c.Testimonials = nil
	c.Footer = catalog.Footer{}

	doc := parseHTML(t, renderCatalog(t, c, testOptions()))
	require.Equal(t, SectionOrder, sectionOrder(doc))
	require.Equal(t, 0, doc.Find("article.product-card").Length())
}

func TestFeaturedViewAllButtonIsOptional(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderCatalog(t, catalog.Default(), testOptions()))
	button := doc.Find("#featured .panel-head a.btn")
	require.Equal(t, 1, button.Length())
	require.Equal(t, "#collections", button.AttrOr("href", ""))

	c := catalog.Default()
	c.Featured.ViewAll = nil
	require.NoError(t, catalog.Validate(c))
	doc = parseHTML(t, renderCatalog(t, c, testOptions()))
	require.Equal(t, 0, doc.Find("#featured .panel-head a").Length())
}

func TestHighlightsCarryFixedCaption(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	doc := parseHTML(t, renderCatalog(t, c, testOptions()))

	items := doc.Find("#highlights .highlight")
	require.Equal(t, len(c.Highlights), items.Length())
	for _, caption := range texts(items.Find(".caption")) {
		require.Equal(t, "Included with every order", caption)
	}
	require.Equal(t, "Complimentary 2-Day Shipping", strings.TrimSpace(items.First().Find("h3").Text()))
}

func TestCollectionsAndStoriesFollowCatalog(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	doc := parseHTML(t, renderCatalog(t, c, testOptions()))

	require.Equal(t, []string{"Calm Interiors", "Future Sound"}, texts(doc.Find("#collections .collection-tile h3")))
	require.Equal(t, []string{"Discover now", "Discover now"}, texts(doc.Find("#collections .collection-tile button")))

	require.Equal(t, []string{"May 28, 2024", "May 14, 2024"}, texts(doc.Find("#stories .journal-entry .date")))
	require.Equal(t, 2, doc.Find("#stories .journal-entry a.read-more").Length())

	footers := texts(doc.Find("#stories blockquote footer"))
	require.Equal(t, []string{"Lena Hernandez · Interior Designer", "Arjun Patel · Sound Producer"}, footers)
}

func TestNewsletterFormContract(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderCatalog(t, catalog.Default(), testOptions()))

	form := doc.Find(`section[data-section="newsletter"] form`)
	require.Equal(t, 1, form.Length())
	require.Equal(t, "post", form.AttrOr("method", ""))
	require.Equal(t, "/newsletter", form.AttrOr("action", ""))

	inputs := form.Find("input")
	require.Equal(t, 1, inputs.Length(), "the form has exactly one input")
	require.Equal(t, "email", inputs.AttrOr("type", ""))
	require.Equal(t, "email", inputs.AttrOr("name", ""))
	_, required := inputs.Attr("required")
	require.True(t, required)

	label := form.Find(`label[for="newsletter-email"]`)
	require.Equal(t, "Email address", strings.TrimSpace(label.Text()))
	require.Equal(t, "submit", form.Find("button").AttrOr("type", ""))

	require.Empty(t, strings.TrimSpace(doc.Find("#newsletter-status").Text()))
}

func TestNewsletterErrorStateRendersInline(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.Newsletter = NewsletterState{Status: NewsletterInvalid, Email: "not-an-email"}
	doc := parseHTML(t, renderCatalog(t, catalog.Default(), opts))

	input := doc.Find("#newsletter-email")
	require.Equal(t, "not-an-email", input.AttrOr("value", ""))
	require.Equal(t, "true", input.AttrOr("aria-invalid", ""))

	status := doc.Find("#newsletter-status")
	require.Equal(t, "invalid", status.AttrOr("data-status", ""))
	require.True(t, status.HasClass("is-error"))
	require.Equal(t, "Please enter a valid email address.", strings.TrimSpace(status.Text()))
}

func TestFooterCopyrightUsesRenderYear(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderCatalog(t, catalog.Default(), testOptions()))
	require.Equal(t, "© 2024 lumen. All rights reserved.", strings.TrimSpace(doc.Find("footer .copyright").Text()))

	require.Equal(t, []string{"Shop", "Company", "Support"}, texts(doc.Find(".footer-group .footer-title")))
	require.Equal(t, []string{"Privacy", "Terms", "Accessibility"}, texts(doc.Find(".legal-links a")))
}

func TestComposeDefaultsToCurrentYear(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.Now = time.Time{}
	doc := Compose(catalog.Default(), opts)

	require.Equal(t, time.Now().Year(), doc.Footer.Year)
	require.Equal(t, Copyright(time.Now().Year(), "lumen"), doc.Footer.Copyright)
}

func TestComposeDoesNotAliasCatalogSlices(t *testing.T) {
	t.Parallel()

	c := catalog.Default()
	doc := Compose(c, testOptions())
	doc.Featured.Cards[0].Badges[0] = "changed"
	doc.Featured.Cards[0].Swatches[0] = "#000000"

	require.Equal(t, "New Arrival", c.Products[0].Badges[0])
	require.Equal(t, "#1c1c20", c.Products[0].Colors[0])
}

func TestImagesCarryAltAndSizing(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderCatalog(t, catalog.Default(), testOptions()))

	imgs := doc.Find("img")
	require.Equal(t, 1+4+2, imgs.Length())
	imgs.Each(func(_ int, img *goquery.Selection) {
		require.NotEmpty(t, img.AttrOr("alt", ""), "img %s needs alt text", img.AttrOr("src", ""))
		require.NotEmpty(t, img.AttrOr("srcset", ""))
		if img.HasClass("fill") {
			require.NotEmpty(t, img.AttrOr("sizes", ""))
			require.Equal(t, "lazy", img.AttrOr("loading", ""))
			return
		}
		require.Equal(t, "900", img.AttrOr("width", ""))
		require.Equal(t, "1050", img.AttrOr("height", ""))
		require.Equal(t, "eager", img.AttrOr("loading", ""))
	})
}

func TestHeadMetadata(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderCatalog(t, catalog.Default(), testOptions()))

	require.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "lumen — Modern Living Essentials", doc.Find("title").Text())
	require.Equal(t, "https://shop.example.com/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, "en_US", doc.Find(`meta[property="og:locale"]`).AttrOr("content", ""))
	require.Equal(t, "summary_large_image", doc.Find(`meta[name="twitter:card"]`).AttrOr("content", ""))
	require.Equal(t, 8, doc.Find(`script[type="application/ld+json"]`).Length())
	require.Contains(t, doc.Find(`script[type="application/ld+json"]`).First().Text(), `"@type":"Organization"`)
}

func TestRenderedPagePassesAnchorCheck(t *testing.T) {
	t.Parallel()

	body := renderCatalog(t, catalog.Default(), testOptions())
	require.NoError(t, CheckAnchors(bytes.NewReader(body)))
}

func TestSrcSetRewritesWidth(t *testing.T) {
	t.Parallel()

	got := SrcSet("https://images.example.com/a.jpg?fit=crop&w=1200", []int{640, 1600})
	require.Equal(t,
		"https://images.example.com/a.jpg?fit=crop&w=640 640w, https://images.example.com/a.jpg?fit=crop&w=1600 1600w",
		got)
	require.Empty(t, SrcSet("/relative.jpg", []int{640}))
}

func TestParseNewsletterStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, NewsletterSubscribed, ParseNewsletterStatus("subscribed"))
	require.Equal(t, NewsletterIdle, ParseNewsletterStatus("<script>"))
	require.False(t, NewsletterState{Status: NewsletterSubscribed}.IsError())
	require.True(t, NewsletterState{Status: NewsletterUnavailable}.IsError())
}
