package http

import (
	"net/http"

	"github.com/oshokin/fake-useragent/useragent"
)

// UserAgentInjector is a custom http.RoundTripper that injects a User-Agent header into HTTP requests.
// It wraps another http.RoundTripper and ensures that a User-Agent header is present in every request.
type UserAgentInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// userAgentProvider provides the User-Agent string to inject.
	userAgentProvider useragent.UserAgentProvider
}

// NewUserAgentInjector creates and returns a new instance of UserAgentInjector.
// A nil provider falls back to a random provider over the built-in User-Agent list.
func NewUserAgentInjector(next http.RoundTripper, userAgentProvider useragent.UserAgentProvider) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	if userAgentProvider == nil {
		userAgentProvider = useragent.NewRandomUserAgentProvider()
	}

	return &UserAgentInjector{
		next:              next,
		userAgentProvider: userAgentProvider,
	}
}

// RoundTrip executes a single HTTP transaction and injects a User-Agent header if it is missing.
// The caller's request is cloned before modification, as required by http.RoundTripper.
func (t *UserAgentInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if req.Header.Get(userAgentHeader) == "" {
		req = req.Clone(req.Context())
		req.Header.Set(userAgentHeader, t.userAgentProvider.GetUserAgent())
	}

	return t.next.RoundTrip(req)
}
