package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/fetchkit/fetchkit/fetch"
)

func TestNewClient_Defaults(t *testing.T) {
	c, err := fetch.NewClient()
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.BaseURL != "" {
		t.Fatalf("BaseURL = %q, want empty", c.BaseURL)
	}
	if c.UserAgent == "" {
		t.Fatalf("UserAgent should have a default")
	}
	if c.HTTPClient == nil {
		t.Fatalf("HTTPClient should have a default")
	}
}

func TestNewClient_CustomBaseURL(t *testing.T) {
	customBase := "https://api.example.test/v1/"
	c, err := fetch.NewClient(fetch.WithBaseURL(customBase))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.BaseURL != customBase {
		t.Fatalf("BaseURL = %q, want %q", c.BaseURL, customBase)
	}
}

func TestNewClient_OptionValidation(t *testing.T) {
	// invalid base url
	if _, err := fetch.NewClient(fetch.WithBaseURL(":// nope")); err == nil {
		t.Fatalf("expected error for invalid base URL")
	}
	// relative base url
	if _, err := fetch.NewClient(fetch.WithBaseURL("/just/a/path")); err == nil {
		t.Fatalf("expected error for non-absolute base URL")
	}
	// WithHTTPClient(nil) should error
	if _, err := fetch.NewClient(fetch.WithHTTPClient(nil)); err == nil {
		t.Fatalf("expected error for nil http client")
	}
	// WithLogger(nil) should error
	if _, err := fetch.NewClient(fetch.WithLogger(nil)); err == nil {
		t.Fatalf("expected error for nil logger")
	}
	// non-positive timeout
	if _, err := fetch.NewClient(fetch.WithHTTPTimeout(0)); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
	// trailing slash is enforced by WithBaseURL
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	c, err := fetch.NewClient(fetch.WithBaseURL(srv.URL)) // no trailing slash
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got := c.BaseURL[len(c.BaseURL)-1:]; got != "/" {
		t.Fatalf("expected trailing slash, got %q", c.BaseURL)
	}
}

func TestNewClient_WithUserAgentAndHTTPTimeout(t *testing.T) {
	ua := "fetchkit-test/1.0"
	c, err := fetch.NewClient(
		fetch.WithUserAgent(ua),
		fetch.WithHTTPTimeout(1500*time.Millisecond),
		fetch.WithLogger(zap.NewNop()),
	)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if c.UserAgent != ua {
		t.Fatalf("UserAgent = %q, want %q", c.UserAgent, ua)
	}
	if c.HTTPClient.Timeout != 1500*time.Millisecond {
		t.Fatalf("timeout = %v, want 1.5s", c.HTTPClient.Timeout)
	}
}

func TestDo_RelativeURLWithoutBase(t *testing.T) {
	c, err := fetch.NewClient()
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := c.Get(context.Background(), "api/users", nil); err == nil {
		t.Fatalf("expected error for relative url without base url")
	}
}

func TestDo_EmptyURL(t *testing.T) {
	c, err := fetch.NewClient()
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := c.Do(context.Background(), fetch.Request{}); err == nil {
		t.Fatalf("expected error for empty url")
	}
}
