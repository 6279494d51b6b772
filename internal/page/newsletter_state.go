package page

// NewsletterStatus is the outcome of the last newsletter submission, carried back to
// the page via query string after a redirect or set directly when re-rendering.
type NewsletterStatus string

const (
	NewsletterIdle        NewsletterStatus = ""
	NewsletterSubscribed  NewsletterStatus = "subscribed"
	NewsletterRequired    NewsletterStatus = "required"
	NewsletterInvalid     NewsletterStatus = "invalid"
	NewsletterUnavailable NewsletterStatus = "unavailable"
)

// ParseNewsletterStatus maps a query value to a known status. Unknown values are idle.
func ParseNewsletterStatus(v string) NewsletterStatus {
	switch s := NewsletterStatus(v); s {
	case NewsletterSubscribed, NewsletterRequired, NewsletterInvalid, NewsletterUnavailable:
		return s
	default:
		return NewsletterIdle
	}
}

// NewsletterState is what the newsletter section shows under the form.
type NewsletterState struct {
	Status NewsletterStatus
	// Email echoes a rejected value back into the input.
	Email string
}

// Message returns the inline status text.
func (s NewsletterState) Message() string {
	switch s.Status {
	case NewsletterSubscribed:
		return "Thanks for joining. Look out for our next letter."
	case NewsletterRequired:
		return "Please enter your email address."
	case NewsletterInvalid:
		return "Please enter a valid email address."
	case NewsletterUnavailable:
		return "We couldn't add you right now. Please try again shortly."
	default:
		return ""
	}
}

// IsError reports whether the status should be announced as an error.
func (s NewsletterState) IsError() bool {
	switch s.Status {
	case NewsletterRequired, NewsletterInvalid, NewsletterUnavailable:
		return true
	default:
		return false
	}
}
