package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	defaultMaxAttempts = 3
	defaultBackoffBase = 1 * time.Second
	defaultTimeout     = 15 * time.Second

	// Some providers reject Go's default client fingerprint, so requests
	// carry a browser user agent.
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Client is the shared outbound HTTP client every provider client is built
// on. It retries transport errors, non-success statuses, and body decode
// failures up to maxAttempts times with a linear-growth backoff
// (attempt x base delay), then raises the final failure to the caller.
// Safe for concurrent use; calls share no mutable state.
type Client struct {
	http        *http.Client
	maxAttempts int
	backoffBase time.Duration
}

// New creates a retrying upstream client. Non-positive arguments fall back
// to defaults (3 attempts, 1s backoff base).
func New(maxAttempts int, backoffBase time.Duration) *Client {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if backoffBase <= 0 {
		backoffBase = defaultBackoffBase
	}
	return &Client{
		http:        &http.Client{Timeout: defaultTimeout},
		maxAttempts: maxAttempts,
		backoffBase: backoffBase,
	}
}

// NewClient creates an upstream client with default settings.
func NewClient() *Client {
	return New(defaultMaxAttempts, defaultBackoffBase)
}

// GetJSON fetches url and decodes the response body into out, retrying per
// the client's budget. The returned error wraps ErrUnavailable once every
// attempt is exhausted.
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		lastErr = c.fetchOnce(ctx, url, out)
		if lastErr == nil {
			return nil
		}

		if attempt == c.maxAttempts {
			break
		}

		log.Printf("[upstream] attempt %d/%d failed for %s: %v", attempt, c.maxAttempts, url, lastErr)

		delay := time.Duration(attempt) * c.backoffBase
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("%w: %s after %d attempts: %v", ErrUnavailable, url, c.maxAttempts, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: url, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}

	return nil
}
