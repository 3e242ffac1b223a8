package app

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/fake-useragent/internal/config"
	"github.com/oshokin/fake-useragent/internal/logger"
	"github.com/oshokin/fake-useragent/useragent"
)

// ExecuteRootCommand prints cfg.Count User-Agent strings drawn from the provider, one per line.
// A nil provider means the package-level random provider.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, w io.Writer, provider useragent.UserAgentProvider) error {
	if provider == nil {
		provider = useragent.ProviderFunc(useragent.GetRandomUserAgent)
	}

	logger.Debugf(ctx, "Printing %d random User-Agent string(s)", cfg.Count)

	for range cfg.Count {
		if _, err := fmt.Fprintln(w, provider.GetUserAgent()); err != nil {
			return fmt.Errorf("failed to write user agent: %w", err)
		}
	}

	return nil
}

// ExecuteListCommand prints every built-in User-Agent string in its fixed order.
func ExecuteListCommand(_ context.Context, w io.Writer) error {
	for _, ua := range useragent.UserAgents() {
		if _, err := fmt.Fprintln(w, ua); err != nil {
			return fmt.Errorf("failed to write user agent: %w", err)
		}
	}

	return nil
}
