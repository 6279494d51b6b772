package page

import (
	"net/url"
	"strconv"
	"strings"

	"finitefield.org/lumen-web/internal/catalog"
)

// SrcSetWidths are the candidate widths requested from the image host.
var SrcSetWidths = []int{640, 1080, 1600}

// Picture describes one <img>. Fill pictures size to their container and carry
// Sizes; intrinsic pictures carry Width and Height.
type Picture struct {
	Src      string
	SrcSet   string
	Sizes    string
	Alt      string
	Width    int
	Height   int
	Fill     bool
	Priority bool
}

// IntrinsicPicture renders an image with fixed dimensions. It is treated as above
// the fold and loaded eagerly.
func IntrinsicPicture(img catalog.Image) Picture {
	return Picture{
		Src:      img.URL,
		SrcSet:   SrcSet(img.URL, SrcSetWidths),
		Sizes:    "(min-width: 1024px) 45vw, 100vw",
		Alt:      img.Alt,
		Width:    img.Width,
		Height:   img.Height,
		Priority: true,
	}
}

// FillPicture renders an image that covers its container.
func FillPicture(src, alt string) Picture {
	return Picture{
		Src:    src,
		SrcSet: SrcSet(src, SrcSetWidths),
		Sizes:  fillSizes,
		Alt:    alt,
		Fill:   true,
	}
}

// SrcSet builds a srcset by rewriting the w query parameter the image host uses
// for resizing. URLs that do not parse are returned without candidates.
func SrcSet(src string, widths []int) string {
	u, err := url.Parse(src)
	if err != nil || u.Host == "" {
		return ""
	}
	parts := make([]string, 0, len(widths))
	for _, w := range widths {
		q := u.Query()
		q.Set("w", strconv.Itoa(w))
		v := *u
		v.RawQuery = q.Encode()
		parts = append(parts, v.String()+" "+strconv.Itoa(w)+"w")
	}
	return strings.Join(parts, ", ")
}
