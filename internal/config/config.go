// Package config assembles runtime configuration from defaults, an optional .env
// file, the process environment and explicit overrides.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	defaultEnvFile           = ".env"
	defaultPort              = "8080"
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 15 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultReadHeaderTimeout = 10 * time.Second
	defaultRequestTimeout    = 30 * time.Second
	defaultEnvironment       = "local"
	defaultSiteURL           = "https://agentic-7f26a1b2.vercel.app"
	defaultLocale            = "en-US"
	defaultNewsletterTimeout = 5 * time.Second
	defaultLogLevel          = "info"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Environment string
	Dev         bool
	LogLevel    string
	Server      ServerConfig
	Site        SiteConfig
	Catalog     CatalogConfig
	Newsletter  NewsletterConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port              string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	RequestTimeout    time.Duration
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string { return ":" + s.Port }

// SiteConfig describes how the site identifies itself in page metadata.
type SiteConfig struct {
	URL    string
	Locale language.Tag
}

// CatalogConfig points at an optional catalog override file.
type CatalogConfig struct {
	File string
}

// NewsletterConfig selects where subscriptions go.
type NewsletterConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path. An empty path disables the file.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects explicit values that take precedence over everything else.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv stops Load from consulting the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load resolves the configuration. Precedence from lowest to highest is defaults,
// .env file, process environment, WithEnvMap values.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	var invalid []string

	port := stringWithDefault(lookup, "LUMEN_WEB_PORT", stringWithDefault(lookup, "PORT", defaultPort))
	if n, err := strconv.Atoi(port); err != nil || n <= 0 || n > 65535 {
		invalid = append(invalid, "Server.Port")
	}

	localeRaw := stringWithDefault(lookup, "LUMEN_WEB_LOCALE", defaultLocale)
	locale, err := language.Parse(localeRaw)
	if err != nil {
		invalid = append(invalid, "Site.Locale")
	}

	cfg := Config{
		Environment: strings.ToLower(stringWithDefault(lookup, "LUMEN_WEB_ENV", defaultEnvironment)),
		Dev:         boolWithDefault(lookup, "LUMEN_WEB_DEV", false),
		LogLevel:    strings.ToLower(stringWithDefault(lookup, "LUMEN_WEB_LOG_LEVEL", defaultLogLevel)),
		Server: ServerConfig{
			Port:              port,
			ReadTimeout:       durationWithDefault(lookup, "LUMEN_WEB_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:      durationWithDefault(lookup, "LUMEN_WEB_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:       durationWithDefault(lookup, "LUMEN_WEB_IDLE_TIMEOUT", defaultIdleTimeout),
			ReadHeaderTimeout: durationWithDefault(lookup, "LUMEN_WEB_READ_HEADER_TIMEOUT", defaultReadHeaderTimeout),
			RequestTimeout:    durationWithDefault(lookup, "LUMEN_WEB_REQUEST_TIMEOUT", defaultRequestTimeout),
		},
		Site: SiteConfig{
			URL:    strings.TrimRight(stringWithDefault(lookup, "LUMEN_WEB_SITE_URL", defaultSiteURL), "/"),
			Locale: locale,
		},
		Catalog: CatalogConfig{
			File: strings.TrimSpace(stringWithDefault(lookup, "LUMEN_WEB_CATALOG_FILE", "")),
		},
		Newsletter: NewsletterConfig{
			WebhookURL: strings.TrimSpace(stringWithDefault(lookup, "LUMEN_WEB_NEWSLETTER_WEBHOOK_URL", "")),
			Timeout:    durationWithDefault(lookup, "LUMEN_WEB_NEWSLETTER_TIMEOUT", defaultNewsletterTimeout),
		},
	}

	invalid = append(invalid, validateConfig(cfg)...)
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return Config{}, &ValidationError{fields: invalid}
	}
	return cfg, nil
}

func validateConfig(cfg Config) []string {
	var invalid []string
	if !isAbsoluteHTTPURL(cfg.Site.URL) {
		invalid = append(invalid, "Site.URL")
	}
	if cfg.Newsletter.WebhookURL != "" && !isAbsoluteHTTPURL(cfg.Newsletter.WebhookURL) {
		invalid = append(invalid, "Newsletter.WebhookURL")
	}
	if cfg.Newsletter.Timeout <= 0 {
		invalid = append(invalid, "Newsletter.Timeout")
	}
	durations := map[string]time.Duration{
		"Server.ReadTimeout":       cfg.Server.ReadTimeout,
		"Server.WriteTimeout":      cfg.Server.WriteTimeout,
		"Server.IdleTimeout":       cfg.Server.IdleTimeout,
		"Server.ReadHeaderTimeout": cfg.Server.ReadHeaderTimeout,
		"Server.RequestTimeout":    cfg.Server.RequestTimeout,
	}
	for name, d := range durations {
		if d <= 0 {
			invalid = append(invalid, name)
		}
	}
	return invalid
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(value), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return d
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
