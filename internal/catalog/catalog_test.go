package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(Default()))
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	a := Default()
	b := Default()
	a.Products[0].Badges[0] = "changed"
	require.Equal(t, "New Arrival", b.Products[0].Badges[0])
}

func TestDefaultNavigationTargetsSections(t *testing.T) {
	t.Parallel()

	c := Default()
	require.Len(t, c.Navigation, 4)
	for i, want := range []string{"#featured", "#collections", "#highlights", "#stories"} {
		require.Equal(t, want, c.Navigation[i].Href)
	}
}

func TestValidateRejectsDuplicateProductIDs(t *testing.T) {
	t.Parallel()

	c := Default()
	c.Products[1].ID = c.Products[0].ID

	err := Validate(c)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidCatalog))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Contains(t, ve.Fields(), "products (unique)")
}

func TestValidateRejectsBadSwatchAndImage(t *testing.T) {
	t.Parallel()

	c := Default()
	c.Products[0].Colors = []string{"#1c1c20", "charcoal"}
	c.Collections[1].Image = "not a url"

	var ve *ValidationError
	require.ErrorAs(t, Validate(c), &ve)
	require.Contains(t, ve.Fields(), "products[0].colors[1] (hexcolor)")
	require.Contains(t, ve.Fields(), "collections[1].image (url)")
}

func TestValidateRejectsNavigationOutsideSections(t *testing.T) {
	t.Parallel()

	c := Default()
	c.Navigation = append(c.Navigation, NavLink{Href: "#careers", Label: "Careers"})
	c.Hero.SecondaryCTA.Href = "/stories"

	var ve *ValidationError
	require.ErrorAs(t, Validate(c), &ve)
	require.Contains(t, ve.Fields(), "navigation[4].href (anchor)")
	require.Contains(t, ve.Fields(), "hero.secondary_cta.href (anchor)")
}

func TestValidateAllowsProductsWithoutOptionalLists(t *testing.T) {
	t.Parallel()

	c := Default()
	c.Products[0].Badges = nil
	c.Products[0].Colors = []string{}
	require.NoError(t, Validate(c))
	require.False(t, c.Products[0].HasBadges())
	require.False(t, c.Products[0].HasColors())
}

func TestValidateTreatsViewAllAsOptional(t *testing.T) {
	t.Parallel()

	c := Default()
	c.Featured.ViewAll = nil
	require.NoError(t, Validate(c))

	c.Featured.ViewAll = &Link{Href: "/shop"}
	var ve *ValidationError
	require.ErrorAs(t, Validate(c), &ve)
	require.Contains(t, ve.Fields(), "featured.view_all.label (required)")
	require.Contains(t, ve.Fields(), "featured.view_all.href (anchor)")
}

func TestIsSectionAnchor(t *testing.T) {
	t.Parallel()

	require.True(t, IsSectionAnchor("#stories"))
	require.False(t, IsSectionAnchor("stories"))
	require.False(t, IsSectionAnchor("#"))
	require.False(t, IsSectionAnchor("#newsletter"))
}

const overrideYAML = `
brand: {name: nova, mark: nova., tagline: Quiet tools.}
navigation:
  - {href: "#featured", label: Shop}
  - {href: "#stories", label: Journal}
hero:
  headline: Tools for quiet rooms.
  subhead: Considered hardware.
  primary_cta: {href: "#featured", label: Shop}
  secondary_cta: {href: "#stories", label: Read}
  stats:
    - {label: Members, value: 3k}
    - {label: Stores, value: "12"}
    - {label: Rating, value: 4.8 / 5}
  image: {url: "https://example.com/hero.jpg", alt: Hero, width: 900, height: 1050}
featured: {title: Picks}
products:
  - id: 7
    name: Halo Clock
    description: A clock.
    price: "€89"
    image: https://example.com/clock.jpg
story: {journal_title: Notes, pull_quote: Less is more.}
newsletter: {title: Join, input_label: Email, submit: Subscribe}
`

func TestLoadFileParsesOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overrideYAML), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "nova", c.Brand.Name)
	require.Len(t, c.Products, 1)
	require.Equal(t, "€89", c.Products[0].Price)
	require.Empty(t, c.Products[0].Badges)
	require.Empty(t, c.Collections)
	require.Nil(t, c.Featured.ViewAll)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(overrideYAML + "\nbanner: oops\n"))
	require.Error(t, err)
}

func TestDecodeRejectsEmptyDocument(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(""))
	require.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestNewSource(t *testing.T) {
	t.Parallel()

	src, err := NewSource("", false)
	require.NoError(t, err)
	c, err := src.Catalog()
	require.NoError(t, err)
	require.Equal(t, "lumen", c.Brand.Name)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overrideYAML), 0o600))

	dev, err := NewSource(path, true)
	require.NoError(t, err)
	require.IsType(t, File{}, dev)

	_, err = NewSource(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.Error(t, err)
}
