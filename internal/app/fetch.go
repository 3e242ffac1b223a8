package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/fake-useragent/internal/config"
	"github.com/oshokin/fake-useragent/internal/constants"
	"github.com/oshokin/fake-useragent/internal/logger"
	http_transport "github.com/oshokin/fake-useragent/internal/transport/http"
	"github.com/oshokin/fake-useragent/useragent"
)

// ErrUnexpectedHTTPStatus indicates that the server answered with an error status.
var ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")

// FetchResult describes a completed fetch.
type FetchResult struct {
	// RequestID is the generated X-Request-Id value.
	RequestID string
	// UserAgent is the User-Agent the request was sent with.
	UserAgent string
	// Status is the response status line, e.g. "200 OK".
	Status string
	// Bytes is the size of the response body.
	Bytes int64
}

// ExecuteFetchCommand performs a GET request to rawURL with a random User-Agent and prints a summary to w.
// If outputPath is set, the response body is saved there.
func ExecuteFetchCommand(
	ctx context.Context,
	cfg *config.Config,
	w io.Writer,
	rawURL, outputPath string,
) (*FetchResult, error) {
	result := &FetchResult{
		RequestID: uuid.NewString(),
	}

	ctx = logger.WithKV(ctx, "request_id", result.RequestID)

	random := useragent.NewRandomUserAgentProvider()
	provider := useragent.ProviderFunc(func() string {
		result.UserAgent = random.GetUserAgent()

		return result.UserAgent
	})

	client := http_transport.NewClient(cfg, provider)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(http_transport.RequestIDHeader, result.RequestID)

	logger.Debugf(ctx, "Fetching %s", rawURL)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch '%s': %w", rawURL, err)
	}

	defer resp.Body.Close() //nolint:errcheck // Error on close is not critical here.

	result.Status = resp.Status

	if resp.StatusCode >= http.StatusBadRequest {
		return result, fmt.Errorf("%w: %s", ErrUnexpectedHTTPStatus, resp.Status)
	}

	result.Bytes, err = saveBody(ctx, resp, outputPath)
	if err != nil {
		return result, err
	}

	_, err = fmt.Fprintf(w, "Status:     %s\nUser-Agent: %s\nRequest-ID: %s\nSize:       %s\n",
		result.Status, result.UserAgent, result.RequestID, humanize.Bytes(uint64(result.Bytes))) //nolint:gosec // Non-negative.
	if err != nil {
		return result, fmt.Errorf("failed to write summary: %w", err)
	}

	return result, nil
}

// saveBody drains the response body into outputPath, or discards it when outputPath is empty.
func saveBody(ctx context.Context, resp *http.Response, outputPath string) (int64, error) {
	if outputPath == "" {
		n, err := io.Copy(io.Discard, resp.Body)
		if err != nil {
			return n, fmt.Errorf("failed to read response body: %w", err)
		}

		return n, nil
	}

	f, err := os.OpenFile(filepath.Clean(outputPath), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.DefaultFilePermissions)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}

	defer f.Close() //nolint:errcheck // Error on close is checked by Sync below.

	var writer io.Writer = f

	// The progress bar is noise once debug dumps are enabled.
	if logger.Level() == zap.InfoLevel {
		bar := progressbar.DefaultBytes(resp.ContentLength, "Downloading")
		writer = io.MultiWriter(f, bar)
	}

	n, err := io.Copy(writer, resp.Body)
	if err != nil {
		return n, fmt.Errorf("failed to write file: %w", err)
	}

	if err = f.Sync(); err != nil {
		return n, fmt.Errorf("failed to flush file: %w", err)
	}

	logger.Infof(ctx, "Saved %s to '%s'", humanize.Bytes(uint64(n)), outputPath) //nolint:gosec // Non-negative.

	return n, nil
}
