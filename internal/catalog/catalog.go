// Package catalog holds the fixed content records the landing page is built from.
//
// A Catalog is constructed once (from the literal default or a YAML override) and
// is only ever read afterwards. Nothing in this package mutates a Catalog after it
// has been returned to the caller.
package catalog

// In-page section anchors. These ids are the only addressable contract of the
// rendered page: navigation, hero calls to action and footer links point at them.
const (
	AnchorFeatured    = "featured"
	AnchorCollections = "collections"
	AnchorHighlights  = "highlights"
	AnchorStories     = "stories"
)

// SectionAnchors lists the anchors in the order their sections appear on the page.
var SectionAnchors = []string{AnchorFeatured, AnchorHighlights, AnchorCollections, AnchorStories}

// Catalog is the complete set of content rendered on the landing page.
type Catalog struct {
	Brand        Brand          `yaml:"brand"`
	Navigation   []NavLink      `yaml:"navigation" validate:"required,dive"`
	Hero         Hero           `yaml:"hero"`
	Featured     FeaturedCopy   `yaml:"featured"`
	Products     []Product      `yaml:"products" validate:"unique=ID,dive"`
	Highlights   []Highlight    `yaml:"highlights" validate:"dive"`
	Collections  []Collection   `yaml:"collections" validate:"dive"`
	Story        StoryPanel     `yaml:"story"`
	Journal      []JournalEntry `yaml:"journal" validate:"dive"`
	Testimonials []Testimonial  `yaml:"testimonials" validate:"dive"`
	Newsletter   NewsletterCopy `yaml:"newsletter"`
	Footer       Footer         `yaml:"footer"`
}

// Brand identifies the storefront.
type Brand struct {
	Name    string `yaml:"name" validate:"required"`
	Mark    string `yaml:"mark" validate:"required"`
	Tagline string `yaml:"tagline"`
}

// NavLink is a header navigation entry targeting an in-page section.
type NavLink struct {
	Href  string `yaml:"href" validate:"required,anchor"`
	Label string `yaml:"label" validate:"required"`
}

// Link is a generic labelled link. Footer links may use "#" as a placeholder target.
type Link struct {
	Href  string `yaml:"href" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

// Image references an externally served picture with intrinsic dimensions.
type Image struct {
	URL    string `yaml:"url" validate:"required,url"`
	Alt    string `yaml:"alt" validate:"required"`
	Width  int    `yaml:"width" validate:"gt=0"`
	Height int    `yaml:"height" validate:"gt=0"`
}

// Stat is one label/value pair shown under the hero copy.
type Stat struct {
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
}

// Hero is the opening banner copy.
type Hero struct {
	Eyebrow      string `yaml:"eyebrow"`
	Headline     string `yaml:"headline" validate:"required"`
	Subhead      string `yaml:"subhead" validate:"required"`
	PrimaryCTA   Link   `yaml:"primary_cta"`
	SecondaryCTA Link   `yaml:"secondary_cta"`
	Stats        []Stat `yaml:"stats" validate:"len=3,dive"`
	Image        Image  `yaml:"image"`
}

// FeaturedCopy is the heading block above the product grid.
type FeaturedCopy struct {
	Title string `yaml:"title" validate:"required"`
	Intro string `yaml:"intro"`
	// ViewAll is optional; nil omits the button.
	ViewAll *Link `yaml:"view_all" validate:"omitempty"`
}

// Product is a featured item. Price is a display string; it is never parsed.
type Product struct {
	ID          int      `yaml:"id" validate:"gt=0"`
	Name        string   `yaml:"name" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Price       string   `yaml:"price" validate:"required"`
	Image       string   `yaml:"image" validate:"required,url"`
	Badges      []string `yaml:"badges,omitempty" validate:"omitempty,dive,required"`
	Colors      []string `yaml:"colors,omitempty" validate:"omitempty,dive,hexcolor"`
}

// HasBadges reports whether badge chips should be rendered for the product.
func (p Product) HasBadges() bool { return len(p.Badges) > 0 }

// HasColors reports whether color swatches should be rendered for the product.
func (p Product) HasColors() bool { return len(p.Colors) > 0 }

// Collection is a curated grouping shown as a full-bleed tile.
type Collection struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Image       string `yaml:"image" validate:"required,url"`
}

// Highlight is a service promise shown in the dark banner.
type Highlight struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	Quote string `yaml:"quote" validate:"required"`
	Name  string `yaml:"name" validate:"required"`
	Role  string `yaml:"role" validate:"required"`
}

// JournalEntry is an excerpt from the editorial journal.
type JournalEntry struct {
	Title   string `yaml:"title" validate:"required"`
	Excerpt string `yaml:"excerpt" validate:"required"`
	Date    string `yaml:"date" validate:"required"`
	Link    string `yaml:"link" validate:"required"`
}

// StoryPanel is the static copy framing the journal and testimonials.
type StoryPanel struct {
	JournalTitle string `yaml:"journal_title" validate:"required"`
	PullQuote    string `yaml:"pull_quote" validate:"required"`
	Body         string `yaml:"body"`
}

// NewsletterCopy is the text surrounding the subscription form.
type NewsletterCopy struct {
	Title       string `yaml:"title" validate:"required"`
	Body        string `yaml:"body"`
	InputLabel  string `yaml:"input_label" validate:"required"`
	Placeholder string `yaml:"placeholder"`
	Submit      string `yaml:"submit" validate:"required"`
}

// FooterGroup is a titled column of footer links.
type FooterGroup struct {
	Title string `yaml:"title" validate:"required"`
	Links []Link `yaml:"links" validate:"dive"`
}

// Footer holds the static footer link groups and legal links.
type Footer struct {
	Groups []FooterGroup `yaml:"groups" validate:"dive"`
	Legal  []Link        `yaml:"legal" validate:"dive"`
}
