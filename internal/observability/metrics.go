package observability

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	metricsOnce          sync.Once
	newsletterSubmission metric.Int64Counter
)

func initMetrics() {
	meter := otel.Meter(instrumentationName)
	counter, err := meter.Int64Counter("lumen.newsletter.submissions",
		metric.WithDescription("Newsletter form submissions by outcome"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return
	}
	newsletterSubmission = counter
}

// RecordNewsletterSubmission counts one form submission with the given outcome
// (subscribed, required, invalid or unavailable).
func RecordNewsletterSubmission(ctx context.Context, outcome string) {
	metricsOnce.Do(initMetrics)
	if newsletterSubmission == nil {
		return
	}
	newsletterSubmission.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
