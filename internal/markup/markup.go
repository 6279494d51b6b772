// Package markup renders short pieces of catalog copy written in inline Markdown.
package markup

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	once   sync.Once
	md     goldmark.Markdown
	policy *bluemonday.Policy
)

func setup() {
	md = goldmark.New(goldmark.WithExtensions(extension.Strikethrough))
	policy = newInlinePolicy()
}

// newInlinePolicy allows phrasing content only; block elements from the Markdown
// renderer are stripped and links are forced to rel="nofollow".
func newInlinePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("em", "strong", "code", "del", "br")
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	return p
}

// Inline renders src as inline Markdown and returns sanitized HTML safe to embed
// inside a paragraph. Plain text passes through unchanged apart from HTML escaping.
func Inline(src string) template.HTML {
	once.Do(setup)
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	out := policy.SanitizeBytes(buf.Bytes())
	return template.HTML(strings.TrimSpace(string(out)))
}
