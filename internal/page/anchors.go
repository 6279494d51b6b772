package page

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// AnchorError reports in-page links whose target id is absent and ids that occur
// more than once.
type AnchorError struct {
	Missing    []string
	Duplicated []string
}

func (e *AnchorError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing targets ["+strings.Join(e.Missing, ", ")+"]")
	}
	if len(e.Duplicated) > 0 {
		parts = append(parts, "duplicate ids ["+strings.Join(e.Duplicated, ", ")+"]")
	}
	return "anchor check: " + strings.Join(parts, "; ")
}

// Anchors scans an HTML document and returns how often each id occurs and every
// in-page link target ("#x" hrefs, "#" placeholders excluded).
func Anchors(r io.Reader) (ids map[string]int, targets []string, err error) {
	ids = map[string]int{}
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return ids, targets, nil
			}
			return nil, nil, fmt.Errorf("scan html: %w", z.Err())
		case html.StartTagToken, html.SelfClosingTagToken:
			tag, hasAttr := z.TagName()
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				switch string(key) {
				case "id":
					ids[string(val)]++
				case "href":
					if string(tag) != "a" && string(tag) != "link" {
						continue
					}
					if t, ok := strings.CutPrefix(string(val), "#"); ok && t != "" {
						targets = append(targets, t)
					}
				}
			}
		}
	}
}

// CheckAnchors verifies that every in-page link resolves to exactly one element.
func CheckAnchors(r io.Reader) error {
	ids, targets, err := Anchors(r)
	if err != nil {
		return err
	}
	missing := map[string]struct{}{}
	for _, t := range targets {
		if ids[t] == 0 {
			missing[t] = struct{}{}
		}
	}
	var ae AnchorError
	for t := range missing {
		ae.Missing = append(ae.Missing, t)
	}
	for id, n := range ids {
		if n > 1 {
			ae.Duplicated = append(ae.Duplicated, id)
		}
	}
	if len(ae.Missing) == 0 && len(ae.Duplicated) == 0 {
		return nil
	}
	sort.Strings(ae.Missing)
	sort.Strings(ae.Duplicated)
	return &ae
}
