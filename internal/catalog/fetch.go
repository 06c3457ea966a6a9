package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Fetcher retrieves a JSON document from a URL and decodes it into v. An
// error return covers transport failures, non-success status codes and
// malformed bodies alike, so the catalog can treat any of them as remote
// unavailability.
type Fetcher interface {
	Fetch(ctx context.Context, url string, v any) error
}

// HTTPFetcher is the production Fetcher on net/http.
type HTTPFetcher struct {
	client *http.Client
	logger *zap.Logger
}

// NewHTTPFetcher creates a fetcher with the given request timeout. A zero
// timeout falls back to 10 seconds.
func NewHTTPFetcher(timeout time.Duration, logger *zap.Logger) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch performs a GET and decodes the response body into v.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	f.logger.Debug("Remote fetch completed",
		zap.String("url", url),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// MockFetcher returns a canned payload after an artificial delay. It stands
// in for the remote source in tests and local development.
type MockFetcher struct {
	Payload any
	Delay   time.Duration
	Err     error
}

// Fetch waits for the configured delay, then either fails with Err or
// marshals the payload into v.
func (m *MockFetcher) Fetch(ctx context.Context, _ string, v any) error {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if m.Err != nil {
		return m.Err
	}
	raw, err := json.Marshal(m.Payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
