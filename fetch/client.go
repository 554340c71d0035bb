// Package fetch issues JSON HTTP requests and funnels every failure —
// transport, HTTP status, or schema validation — into one typed error,
// *apierr.APIError.
package fetch

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultUserAgent = "fetchkit/0.1"
	defaultErrCap    = 8192 // max bytes slurped from an error body
)

// Client performs single HTTP round trips. It holds no mutable state,
// so one Client may serve any number of concurrent callers; it imposes
// no ordering, deduplication, or rate limiting across them.
type Client struct {
	BaseURL    string // resolves relative request URLs; may be empty
	UserAgent  string
	HTTPClient *http.Client

	headers map[string]string
	log     *zap.Logger
}

// Option configures a Client at construction time.
type Option func(*Client) error

// WithBaseURL sets the base URL relative request URLs resolve against.
// A trailing slash is enforced so path joining stays predictable.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid base url %q: %w", raw, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base url %q must be absolute", raw)
		}
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		c.BaseURL = raw
		return nil
	}
}

// WithHTTPClient swaps the underlying *http.Client (custom transports,
// proxies, cookie jars).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.HTTPClient = hc
		return nil
	}
}

// WithHTTPTimeout caps the total time of each round trip.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %v", d)
		}
		c.HTTPClient.Timeout = d
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.UserAgent = ua
		return nil
	}
}

// WithHeader adds a header sent on every request. Per-request headers
// still win on key collision.
func WithHeader(key, value string) Option {
	return func(c *Client) error {
		if c.headers == nil {
			c.headers = map[string]string{}
		}
		c.headers[key] = value
		return nil
	}
}

// WithLogger attaches a zap logger; requests and outcomes are logged at
// debug level. Without it the client stays silent.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		c.log = l
		return nil
	}
}

// NewClient builds a Client. The zero configuration is usable: requests
// must then carry absolute URLs.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		UserAgent:  defaultUserAgent,
		HTTPClient: &http.Client{},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// resolve turns a request URL into an absolute target.
func (c *Client) resolve(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.IsAbs() {
		return raw, nil
	}
	if c.BaseURL == "" {
		return "", fmt.Errorf("relative url %q needs a base url", raw)
	}
	return c.BaseURL + strings.TrimPrefix(raw, "/"), nil
}
