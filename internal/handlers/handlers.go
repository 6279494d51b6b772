// Package handlers serves the landing page, the newsletter form endpoint and the
// health check.
package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"finitefield.org/lumen-web/internal/catalog"
	"finitefield.org/lumen-web/internal/newsletter"
	"finitefield.org/lumen-web/internal/observability"
	"finitefield.org/lumen-web/internal/page"
	"finitefield.org/lumen-web/internal/seo"
)

const (
	// NewsletterPath is where the newsletter form posts.
	NewsletterPath = "/newsletter"

	newsletterSource = "home"
	maxFormBytes     = 8 << 10
	statusQueryParam = "newsletter"
	htmlContentType  = "text/html; charset=utf-8"
)

// Pages renders the landing page for HTTP handlers and the static build.
type Pages struct {
	Catalog    catalog.Source
	Renderer   *page.Renderer
	Site       seo.Site
	Subscriber newsletter.Subscriber
	// Now defaults to time.Now.
	Now func() time.Time
}

func (p *Pages) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// WritePage composes and renders the page with the given newsletter state.
func (p *Pages) WritePage(ctx context.Context, w io.Writer, state page.NewsletterState) error {
	_, span := observability.Tracer().Start(ctx, "page.render")
	defer span.End()

	c, err := p.Catalog.Catalog()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "catalog")
		return fmt.Errorf("load catalog: %w", err)
	}
	doc := page.Compose(c, page.Options{
		Now:        p.now(),
		Site:       p.Site,
		FormAction: NewsletterPath,
		Newsletter: state,
	})
	span.SetAttributes(
		attribute.Int("page.products", len(doc.Featured.Cards)),
		attribute.String("page.newsletter_status", string(state.Status)),
	)
	if err := p.Renderer.Render(w, doc); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render")
		return err
	}
	return nil
}

// Home renders the landing page. A newsletter query parameter left by the form
// redirect selects the status shown under the form.
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	state := page.NewsletterState{Status: page.ParseNewsletterStatus(r.URL.Query().Get(statusQueryParam))}
	p.respond(w, r, http.StatusOK, state)
}

// Newsletter accepts the form post. Rejected input re-renders the page with the
// value echoed back; accepted input redirects to the page's newsletter section.
func (p *Pages) Newsletter(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	raw := r.PostFormValue(page.NewsletterInputName)
	logger := observability.FromContext(r.Context())

	_, err := newsletter.Submit(r.Context(), p.Subscriber, raw, newsletterSource, p.now())
	state := page.NewsletterState{Email: raw}
	status := http.StatusUnprocessableEntity
	switch {
	case err == nil:
		observability.RecordNewsletterSubmission(r.Context(), string(page.NewsletterSubscribed))
		http.Redirect(w, r, SubscribedLocation(), http.StatusSeeOther)
		return
	case errors.Is(err, newsletter.ErrEmailRequired):
		state.Status = page.NewsletterRequired
	case errors.Is(err, newsletter.ErrEmailInvalid):
		state.Status = page.NewsletterInvalid
	default:
		logger.Error("newsletter subscribe failed", zap.Error(err))
		state.Status = page.NewsletterUnavailable
		status = http.StatusBadGateway
	}
	observability.RecordNewsletterSubmission(r.Context(), string(state.Status))
	p.respond(w, r, status, state)
}

// SubscribedLocation is the post/redirect/get target after a successful sign-up.
func SubscribedLocation() string {
	u := url.URL{
		Path:     "/",
		RawQuery: url.Values{statusQueryParam: {string(page.NewsletterSubscribed)}}.Encode(),
		Fragment: page.NewsletterAnchor,
	}
	return u.String()
}

func (p *Pages) respond(w http.ResponseWriter, r *http.Request, status int, state page.NewsletterState) {
	var buf bytes.Buffer
	if err := p.WritePage(r.Context(), &buf, state); err != nil {
		observability.FromContext(r.Context()).Error("render page failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", htmlContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
