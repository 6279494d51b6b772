package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"finitefield.org/lumen-web/internal/observability"
)

const (
	defaultTimeout    = 5 * time.Second
	idempotencyHeader = "Idempotency-Key"
)

// WebhookSubscriber posts each subscription as JSON to an external endpoint.
type WebhookSubscriber struct {
	endpoint string
	http     *http.Client
}

// NewWebhookSubscriber constructs a subscriber for endpoint. A non-positive timeout
// uses the default.
func NewWebhookSubscriber(endpoint string, timeout time.Duration) *WebhookSubscriber {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &WebhookSubscriber{
		endpoint: strings.TrimSpace(endpoint),
		http:     &http.Client{Timeout: timeout},
	}
}

// Subscribe sends s. Each call carries a fresh Idempotency-Key so the receiver can
// drop retried deliveries.
func (c *WebhookSubscriber) Subscribe(ctx context.Context, s Subscription) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(idempotencyHeader, ulid.Make().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("newsletter: webhook status %d: %s", resp.StatusCode, drainError(resp.Body))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}

// LogSubscriber records subscriptions in the request log only. It is the default
// when no webhook is configured.
type LogSubscriber struct{}

// Subscribe logs s using the request-scoped logger.
func (LogSubscriber) Subscribe(ctx context.Context, s Subscription) error {
	observability.FromContext(ctx).Info("newsletter subscription accepted",
		zap.String("email_domain", domainOf(s.Email)),
		zap.String("source", s.Source),
		zap.Time("requested_at", s.RequestedAt),
	)
	return nil
}

// New picks the subscriber for the configured webhook endpoint.
func New(endpoint string, timeout time.Duration) Subscriber {
	if strings.TrimSpace(endpoint) == "" {
		return LogSubscriber{}
	}
	return NewWebhookSubscriber(endpoint, timeout)
}

// domainOf returns the host part of email.
func domainOf(email string) string {
	if i := strings.LastIndexByte(email, '@'); i != -1 {
		return email[i+1:]
	}
	return ""
}
