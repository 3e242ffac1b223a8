package useragent

//go:generate $MOCKGEN -source=provider.go -destination=mocks/provider_mock.go

import (
	"math/rand/v2"
	"slices"
	"sync"
)

// UserAgentProvider is an interface that defines a method for retrieving a User-Agent string.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// SimpleUserAgentProvider is a basic implementation of the UserAgentProvider interface.
// It provides a static User-Agent string that is set during initialization.
type SimpleUserAgentProvider struct {
	// userAgent is the User-Agent string to return.
	userAgent string
}

// NewSimpleUserAgentProvider creates and returns a new instance of SimpleUserAgentProvider.
func NewSimpleUserAgentProvider(userAgent string) UserAgentProvider {
	return &SimpleUserAgentProvider{userAgent: userAgent}
}

// GetUserAgent returns a User-Agent string.
func (p *SimpleUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}

// ProviderFunc adapts an ordinary function to the UserAgentProvider interface.
type ProviderFunc func() string

// GetUserAgent calls f.
func (f ProviderFunc) GetUserAgent() string {
	return f()
}

// RandomUserAgentProvider picks a User-Agent uniformly at random from a fixed candidate list.
// Every call is an independent draw.
type RandomUserAgentProvider struct {
	// userAgents is the immutable candidate list.
	userAgents []string
	// rnd is an optional caller-supplied generator; nil means the global math/rand/v2 source.
	rnd *rand.Rand
	// mu serializes access to rnd, which is not safe for concurrent use.
	mu sync.Mutex
}

// RandomOption configures a RandomUserAgentProvider.
type RandomOption func(*RandomUserAgentProvider)

// WithRand makes the provider draw from the given generator instead of the global source.
func WithRand(rnd *rand.Rand) RandomOption {
	return func(p *RandomUserAgentProvider) {
		p.rnd = rnd
	}
}

// WithUserAgents replaces the built-in candidate list.
// Empty strings are skipped; if nothing remains the built-in list is kept.
func WithUserAgents(userAgents ...string) RandomOption {
	return func(p *RandomUserAgentProvider) {
		candidates := make([]string, 0, len(userAgents))

		for _, ua := range userAgents {
			if ua != "" {
				candidates = append(candidates, ua)
			}
		}

		if len(candidates) > 0 {
			p.userAgents = candidates
		}
	}
}

// NewRandomUserAgentProvider creates a provider over the built-in User-Agent list.
func NewRandomUserAgentProvider(opts ...RandomOption) *RandomUserAgentProvider {
	p := &RandomUserAgentProvider{
		userAgents: userAgents,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// GetUserAgent returns a User-Agent chosen uniformly at random.
func (p *RandomUserAgentProvider) GetUserAgent() string {
	return p.userAgents[p.index()]
}

// Candidates returns a copy of the provider's candidate list.
func (p *RandomUserAgentProvider) Candidates() []string {
	return slices.Clone(p.userAgents)
}

func (p *RandomUserAgentProvider) index() int {
	if p.rnd == nil {
		//nolint:gosec // User-Agent rotation does not need a cryptographic source.
		return rand.IntN(len(p.userAgents))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.rnd.IntN(len(p.userAgents))
}
