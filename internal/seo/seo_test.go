package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"finitefield.org/lumen-web/internal/catalog"
)

func TestBuildDefaultMetadata(t *testing.T) {
	t.Parallel()

	site := DefaultSite("https://shop.example.com/", language.AmericanEnglish)
	m := Build(site, catalog.Default())

	require.Equal(t, "lumen — Modern Living Essentials", m.Title)
	require.Equal(t, "https://shop.example.com/", m.Canonical)
	require.Equal(t, "en", m.Lang)
	require.Equal(t, "en_US", m.OG.Locale)
	require.Equal(t, "website", m.OG.Type)
	require.Equal(t, 1200, m.OG.Image.Width)
	require.Equal(t, 800, m.OG.Image.Height)
	require.NotEmpty(t, m.OG.Image.Alt)
	require.Equal(t, "summary_large_image", m.Twitter.Card)
	// organization + website + 4 products + 2 journal entries
	require.Len(t, m.JSONLD, 8)
}

func TestTitleTemplate(t *testing.T) {
	t.Parallel()

	site := DefaultSite("https://shop.example.com", language.English)
	require.Equal(t, "Journal · lumen", site.Title("Journal"))
	require.Equal(t, site.DefaultTitle, site.Title("  "))
}

func TestProductJSONLDHasNoOffer(t *testing.T) {
	t.Parallel()

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(JSON(Product("Aether", "Sound", "", "", "1"))), &payload))
	require.Equal(t, "Product", payload["@type"])
	require.Equal(t, "1", payload["sku"])
	require.NotContains(t, payload, "offers")
	require.NotContains(t, payload, "url")
}

func TestJSONEscapesScriptBreakers(t *testing.T) {
	t.Parallel()

	out := string(JSON(Organization("</script><b>", "", "")))
	require.NotContains(t, out, "</script>")
}

func TestISODate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2024-05-28", isoDate("May 28, 2024"))
	require.Empty(t, isoDate("sometime in May"))
}

func TestLocaleFormatting(t *testing.T) {
	t.Parallel()

	require.Equal(t, "fr", HTMLLang(language.MustParse("fr-CA")))
	require.Equal(t, "fr_CA", OGLocale(language.MustParse("fr-CA")))
	require.Equal(t, "en", HTMLLang(language.Und))
	require.Equal(t, "en_US", OGLocale(language.Und))
}
