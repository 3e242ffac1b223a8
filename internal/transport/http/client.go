package http

import (
	"net/http"

	"github.com/oshokin/fake-useragent/internal/config"
	"github.com/oshokin/fake-useragent/useragent"
)

// NewClient creates an HTTP client that injects a User-Agent from the given provider
// and logs requests and responses at debug level.
// The timeout and maximum dump size are taken from the validated configuration.
func NewClient(cfg *config.Config, userAgentProvider useragent.UserAgentProvider) *http.Client {
	var (
		timeout      = DefaultTimeout
		maxLogLength uint64
	)

	if cfg != nil {
		if cfg.ParsedRequestTimeout > 0 {
			timeout = cfg.ParsedRequestTimeout
		}

		maxLogLength = cfg.ParsedMaxLogLength
	}

	return &http.Client{
		Transport: NewUserAgentInjector(
			NewLogTransport(http.DefaultTransport, maxLogLength),
			userAgentProvider),
		Timeout: timeout,
	}
}
