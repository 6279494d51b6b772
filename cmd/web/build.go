package main

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finitefield.org/lumen-web/internal/page"
	"finitefield.org/lumen-web/public"
)

func newBuildCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the landing page and its assets to a directory",
		Long: `build renders the page once to <out>/index.html, copies the embedded
assets to <out>/assets/ and fails if any in-page link points at a missing id.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.build(cmd.Context(), out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "dist", "output directory")
	return cmd
}

func (a *app) build(ctx context.Context, out string) error {
	pages, err := a.pages()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := pages.WritePage(ctx, &buf, page.NewsletterState{}); err != nil {
		return err
	}
	if err := page.CheckAnchors(bytes.NewReader(buf.Bytes())); err != nil {
		return err
	}

	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("clean %s: %w", out, err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := os.WriteFile(filepath.Join(out, "index.html"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}
	n, err := copyAssets(public.Assets(), filepath.Join(out, "assets"))
	if err != nil {
		return err
	}
	a.logger.Info("build complete",
		zap.String("out", out),
		zap.Int("bytes", buf.Len()),
		zap.Int("assets", n),
	)
	return nil
}

func copyAssets(src fs.FS, dst string) (int, error) {
	count := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		count++
		return os.WriteFile(target, data, 0o644)
	})
	if err != nil {
		return count, fmt.Errorf("copy assets: %w", err)
	}
	return count, nil
}
