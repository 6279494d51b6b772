// Package newsletter handles the subscription form boundary: it validates the
// submitted address and hands accepted subscriptions to an injected Subscriber.
// Where subscriptions end up is the Subscriber's business, not this package's.
package newsletter

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrEmailRequired is returned when the email field is blank.
	ErrEmailRequired = errors.New("newsletter: email is required")
	// ErrEmailInvalid is returned when the email is not syntactically valid.
	ErrEmailInvalid = errors.New("newsletter: email is invalid")
	// ErrUnavailable wraps Subscriber failures.
	ErrUnavailable = errors.New("newsletter: subscription unavailable")
)

// maxEmailLength follows the RFC 5321 path limit.
const maxEmailLength = 254

// html5EmailTag names the WHATWG "valid e-mail address" rule that browsers apply
// to input type="email".
const html5EmailTag = "html5email"

var html5EmailPattern = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+" +
		"@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?" +
		"(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$",
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func v() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		if err := validate.RegisterValidation(html5EmailTag, func(fl validator.FieldLevel) bool {
			return html5EmailPattern.MatchString(fl.Field().String())
		}); err != nil {
			panic(fmt.Sprintf("newsletter: register %s validation: %v", html5EmailTag, err))
		}
	})
	return validate
}

// ValidateEmail applies the rule the browser's type="email" check uses and
// returns the trimmed address.
func ValidateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", ErrEmailRequired
	}
	if len(email) > maxEmailLength || strings.ContainsAny(email, " \t\r\n") {
		return "", ErrEmailInvalid
	}
	if err := v().Var(email, html5EmailTag); err != nil {
		return "", ErrEmailInvalid
	}
	return email, nil
}

// Subscription is an accepted sign-up.
type Subscription struct {
	Email       string    `json:"email"`
	Source      string    `json:"source"`
	RequestedAt time.Time `json:"requestedAt"`
}

// Subscriber receives accepted subscriptions.
type Subscriber interface {
	Subscribe(ctx context.Context, s Subscription) error
}

// SubscriberFunc adapts ordinary functions to Subscriber.
type SubscriberFunc func(context.Context, Subscription) error

// Subscribe calls f.
func (f SubscriberFunc) Subscribe(ctx context.Context, s Subscription) error { return f(ctx, s) }

// Submit validates raw and, when valid, passes the subscription to sub. Invalid
// input never reaches the subscriber.
func Submit(ctx context.Context, sub Subscriber, raw, source string, now time.Time) (Subscription, error) {
	email, err := ValidateEmail(raw)
	if err != nil {
		return Subscription{}, err
	}
	s := Subscription{Email: email, Source: source, RequestedAt: now.UTC()}
	if sub == nil {
		return Subscription{}, fmt.Errorf("%w: no subscriber configured", ErrUnavailable)
	}
	if err := sub.Subscribe(ctx, s); err != nil {
		return Subscription{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return s, nil
}
