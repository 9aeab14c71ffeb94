// Package fetch implements the client for SAC-serving web services such
// as the IRIS timeseries service: build a query from
// network/station/location/channel and a time window, fetch the raw SAC
// bytes with bounded retries on transient failures, and decode them.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/arloliu/sacio/errs"
	"github.com/arloliu/sacio/internal/hash"
	"github.com/arloliu/sacio/internal/options"
	"github.com/arloliu/sacio/sac"
)

// DefaultBaseURL is the IRIS timeseries web service.
const DefaultBaseURL = "https://service.iris.edu/irisws/timeseries/1/query"

const (
	defaultMaxAttempts = 3
	defaultBackoff     = 500 * time.Millisecond
	defaultTimeout     = 30 * time.Second
)

// Request identifies one waveform: a SEED channel code and a time window.
type Request struct {
	Network  string
	Station  string
	Location string // empty means a blank location code
	Channel  string
	Start    time.Time
	End      time.Time
}

// URL renders the request as a query against base, asking for raw SAC
// output.
func (r Request) URL(base string) string {
	loc := r.Location
	if loc == "" {
		// The service uses "--" for blank location codes.
		loc = "--"
	}

	q := url.Values{}
	q.Set("net", r.Network)
	q.Set("sta", r.Station)
	q.Set("loc", loc)
	q.Set("cha", r.Channel)
	q.Set("starttime", r.Start.UTC().Format("2006-01-02T15:04:05"))
	q.Set("endtime", r.End.UTC().Format("2006-01-02T15:04:05"))
	q.Set("output", "sac.bd")

	return base + "?" + q.Encode()
}

// Cache stores fetched SAC images keyed by the hash of their query URL.
// Implemented by cache.Store; nil disables caching.
type Cache interface {
	Get(key uint64) ([]byte, bool)
	Put(key uint64, data []byte) error
}

// Client fetches SAC files from a remote service.
//
// Transient upstream failures (HTTP 5xx) are retried with a fixed backoff
// up to the attempt budget; client errors (4xx) surface immediately with
// the service's message attached. Cancellation is cooperative through the
// context passed to Fetch.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	maxAttempts int
	backoff     time.Duration
	cache       Cache
}

// Option configures a Client.
type Option = options.Option[*Client]

// WithBaseURL points the client at a different service endpoint.
func WithBaseURL(base string) Option {
	return options.NoError(func(c *Client) {
		c.baseURL = base
	})
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return options.NoError(func(c *Client) {
		c.httpClient = hc
	})
}

// WithMaxAttempts sets the total attempt budget (first try included).
func WithMaxAttempts(n int) Option {
	return options.New(func(c *Client) error {
		if n < 1 {
			return fmt.Errorf("max attempts must be at least 1, got %d", n)
		}
		c.maxAttempts = n

		return nil
	})
}

// WithBackoff sets the pause between retry attempts.
func WithBackoff(d time.Duration) Option {
	return options.NoError(func(c *Client) {
		c.backoff = d
	})
}

// WithCache attaches a response cache; fetches hit the cache before the
// network and successful responses are written back to it.
func WithCache(cache Cache) Option {
	return options.NoError(func(c *Client) {
		c.cache = cache
	})
}

// NewClient creates a fetch client for the IRIS timeseries service.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:     DefaultBaseURL,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Fetch retrieves the raw SAC bytes for the request.
//
// Returns:
//   - []byte: The response body, owned by the caller
//   - error: errs.ErrFetchRejected for 4xx responses,
//     errs.ErrFetchFailed after exhausting retries on 5xx or transport
//     errors, or the context's error on cancellation
func (c *Client) Fetch(ctx context.Context, req Request) ([]byte, error) {
	u := req.URL(c.baseURL)
	key := hash.ID(u)

	if c.cache != nil {
		if data, ok := c.cache.Get(key); ok {
			return data, nil
		}
	}

	// The request ID ties retries and surfaced errors to one fetch.
	reqID := ksuid.New().String()

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.backoff):
			}
		}

		data, retryable, err := c.attempt(ctx, u)
		if err == nil {
			if c.cache != nil {
				// Cache failures do not fail the fetch.
				_ = c.cache.Put(key, data)
			}

			return data, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !retryable {
			return nil, fmt.Errorf("fetch %s: %w", reqID, err)
		}
		lastErr = err
	}

	return nil, fmt.Errorf("fetch %s: %d attempts: %w: %w", reqID, c.maxAttempts, errs.ErrFetchFailed, lastErr)
}

// attempt runs one HTTP round trip. The second return reports whether the
// failure is transient and worth retrying.
func (c *Client) attempt(ctx context.Context, u string) ([]byte, bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Transport-level failures are treated as transient.
		return nil, true, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("server error %d: %s", resp.StatusCode, firstLine(body))
	case resp.StatusCode >= 400:
		return nil, false, fmt.Errorf("%w: status %d: %s", errs.ErrFetchRejected, resp.StatusCode, firstLine(body))
	case resp.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("%w: unexpected status %d", errs.ErrFetchRejected, resp.StatusCode)
	}

	return body, false, nil
}

// FetchFile retrieves and decodes one waveform.
func (c *Client) FetchFile(ctx context.Context, req Request) (*sac.File, error) {
	data, err := c.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	return sac.Decode(data)
}

// firstLine trims an upstream error body down to something that belongs
// in an error message.
func firstLine(body []byte) string {
	const maxLen = 200
	for i, b := range body {
		if b == '\n' || i == maxLen {
			return string(body[:i])
		}
	}

	return string(body)
}
