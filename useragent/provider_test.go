package useragent

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSimpleUserAgentProvider tests the NewSimpleUserAgentProvider function.
func TestNewSimpleUserAgentProvider(t *testing.T) {
	t.Parallel()

	provider := NewSimpleUserAgentProvider("TestAgent/1.0")

	assert.NotNil(t, provider)
	assert.Implements(t, (*UserAgentProvider)(nil), provider)
}

// TestSimpleUserAgentProvider_GetUserAgent tests the GetUserAgent method.
func TestSimpleUserAgentProvider_GetUserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userAgent string
	}{
		{
			name:      "empty user agent",
			userAgent: "",
		},
		{
			name:      "simple user agent",
			userAgent: "Mozilla/5.0",
		},
		{
			name:      "built-in user agent",
			userAgent: LinuxUserAgent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := NewSimpleUserAgentProvider(tt.userAgent)
			assert.Equal(t, tt.userAgent, provider.GetUserAgent())
		})
	}
}

// TestProviderFunc tests the function adapter.
func TestProviderFunc(t *testing.T) {
	t.Parallel()

	calls := 0
	provider := ProviderFunc(func() string {
		calls++

		return MacOSUserAgent
	})

	assert.Implements(t, (*UserAgentProvider)(nil), provider)
	assert.Equal(t, MacOSUserAgent, provider.GetUserAgent())
	assert.Equal(t, 1, calls)
}

// TestRandomUserAgentProvider_Interface tests that RandomUserAgentProvider implements UserAgentProvider.
func TestRandomUserAgentProvider_Interface(t *testing.T) {
	t.Parallel()

	assert.Implements(t, (*UserAgentProvider)(nil), NewRandomUserAgentProvider())
}

// TestRandomUserAgentProvider_DefaultCandidates tests that the default provider draws from the built-in list.
func TestRandomUserAgentProvider_DefaultCandidates(t *testing.T) {
	t.Parallel()

	provider := NewRandomUserAgentProvider()
	assert.Equal(t, UserAgents(), provider.Candidates())

	for range 100 {
		assert.Contains(t, UserAgents(), provider.GetUserAgent())
	}
}

// TestRandomUserAgentProvider_WithRand tests that seeded generators give reproducible sequences.
func TestRandomUserAgentProvider_WithRand(t *testing.T) {
	t.Parallel()

	newProvider := func() *RandomUserAgentProvider {
		return NewRandomUserAgentProvider(WithRand(rand.New(rand.NewPCG(1, 2)))) //nolint:gosec // Deterministic test.
	}

	first := newProvider()
	second := newProvider()

	// Draws from the package default must not influence a seeded provider.
	for range 20 {
		_ = GetRandomUserAgent()
	}

	for range 50 {
		assert.Equal(t, first.GetUserAgent(), second.GetUserAgent())
	}
}

// TestRandomUserAgentProvider_WithUserAgents tests custom candidate lists.
func TestRandomUserAgentProvider_WithUserAgents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		userAgents []string
		expected   []string
	}{
		{
			name:       "single custom user agent",
			userAgents: []string{"Custom/1.0"},
			expected:   []string{"Custom/1.0"},
		},
		{
			name:       "empty values are skipped",
			userAgents: []string{"", "Custom/1.0", ""},
			expected:   []string{"Custom/1.0"},
		},
		{
			name:       "only empty values keep built-in list",
			userAgents: []string{"", ""},
			expected:   UserAgents(),
		},
		{
			name:       "no values keep built-in list",
			userAgents: nil,
			expected:   UserAgents(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := NewRandomUserAgentProvider(WithUserAgents(tt.userAgents...))
			assert.Equal(t, tt.expected, provider.Candidates())
			assert.Contains(t, tt.expected, provider.GetUserAgent())
		})
	}
}

// TestRandomUserAgentProvider_CandidatesIsCopy tests that Candidates cannot mutate the provider.
func TestRandomUserAgentProvider_CandidatesIsCopy(t *testing.T) {
	t.Parallel()

	provider := NewRandomUserAgentProvider()

	candidates := provider.Candidates()
	candidates[0] = "Mutated/1.0"

	assert.Equal(t, WindowsUserAgent, provider.Candidates()[0])
}

// TestRandomUserAgentProvider_Concurrent tests concurrent draws with both random sources.
func TestRandomUserAgentProvider_Concurrent(t *testing.T) {
	t.Parallel()

	providers := map[string]*RandomUserAgentProvider{
		"global source": NewRandomUserAgentProvider(),
		"explicit source": NewRandomUserAgentProvider(
			WithRand(rand.New(rand.NewPCG(7, 11))), //nolint:gosec // Deterministic test.
		),
	}

	for name, provider := range providers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var wg sync.WaitGroup

			results := make(chan string, 8*100)

			for range 8 {
				wg.Add(1)

				go func() {
					defer wg.Done()

					for range 100 {
						results <- provider.GetUserAgent()
					}
				}()
			}

			wg.Wait()
			close(results)

			count := 0

			for ua := range results {
				require.Contains(t, UserAgents(), ua)

				count++
			}

			assert.Equal(t, 800, count)
		})
	}
}
