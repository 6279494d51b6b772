package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"finitefield.org/lumen-web/internal/handlers"
	mw "finitefield.org/lumen-web/internal/middleware"
	"finitefield.org/lumen-web/internal/observability"
	"finitefield.org/lumen-web/public"
)

type routerOptions struct {
	Logger         *zap.Logger
	RequestTimeout time.Duration
}

func newRouter(pages *handlers.Pages, opts routerOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// RealIP trusts X-Forwarded-For; deploy behind a proxy that sets it.
	r.Use(middleware.RealIP)
	r.Use(observability.InjectLoggerMiddleware(opts.Logger))
	r.Use(observability.TraceMiddleware())
	r.Use(observability.RequestLoggerMiddleware())
	r.Use(observability.RecoveryMiddleware(opts.Logger))
	r.Use(mw.SecurityHeaders)
	r.Use(middleware.Compress(5))
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.Get("/healthz", handlers.Healthz)
	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(public.Assets())))
	r.Get("/", pages.Home)
	r.Post(handlers.NewsletterPath, pages.Newsletter)
	return r
}
