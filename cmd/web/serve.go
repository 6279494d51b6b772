package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finitefield.org/lumen-web/internal/catalog"
	"finitefield.org/lumen-web/internal/handlers"
	"finitefield.org/lumen-web/internal/newsletter"
	"finitefield.org/lumen-web/internal/page"
	"finitefield.org/lumen-web/internal/seo"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr()
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (default from LUMEN_WEB_PORT)")
	return cmd
}

func (a *app) pages() (*handlers.Pages, error) {
	source, err := catalog.NewSource(a.cfg.Catalog.File, a.cfg.Dev)
	if err != nil {
		return nil, err
	}
	renderer, err := page.NewRenderer()
	if err != nil {
		return nil, err
	}
	return &handlers.Pages{
		Catalog:    source,
		Renderer:   renderer,
		Site:       seo.DefaultSite(a.cfg.Site.URL, a.cfg.Site.Locale),
		Subscriber: newsletter.New(a.cfg.Newsletter.WebhookURL, a.cfg.Newsletter.Timeout),
	}, nil
}

func (a *app) serve(ctx context.Context, addr string) error {
	pages, err := a.pages()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr: addr,
		Handler: newRouter(pages, routerOptions{
			Logger:         a.logger,
			RequestTimeout: a.cfg.Server.RequestTimeout,
		}),
		ReadHeaderTimeout: a.cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
		IdleTimeout:       a.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("web listening",
			zap.String("addr", addr),
			zap.Bool("dev", a.cfg.Dev),
			zap.String("catalog_file", a.cfg.Catalog.File),
			zap.Bool("newsletter_webhook", a.cfg.Newsletter.WebhookURL != ""),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
