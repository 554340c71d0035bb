package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/fetchkit/fetchkit/apierr"
	"github.com/fetchkit/fetchkit/schema"
)

// Request describes one HTTP call. It is constructed fresh per call and
// owned by the caller; the client never holds on to it.
type Request struct {
	Method  string            // defaults to GET
	URL     string            // absolute, or relative to the client base URL
	Headers map[string]string // merged over the JSON defaults; caller wins
	Body    string            // pre-serialized JSON; empty means no body
	Schema  schema.Schema     // optional; validates the decoded 2xx body
}

// Do performs a single round trip and classifies the outcome.
//
// A value is returned if and only if the status is 2xx and the body
// either satisfies req.Schema or no schema was supplied. Every other
// outcome is exactly one *apierr.APIError: transport failures carry the
// underlying message, HTTP failures carry the status plus the parsed
// error body when it parses, and validation failures carry the field
// diagnostics. An empty 2xx body yields (nil, nil).
func (c *Client) Do(ctx context.Context, req Request) (any, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target, err := c.resolve(req.URL)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.UserAgent)
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	c.log.Debug("request", zap.String("method", method), zap.String("url", target))

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.log.Debug("transport failure", zap.String("url", target), zap.Error(err))
		return nil, apierr.Transport(err)
	}
	defer resp.Body.Close()

	c.log.Debug("response", zap.String("url", target), zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, defaultErrCap))
		return nil, apierr.Parse(slurp, resp.StatusCode)
	}

	slurp, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Transport(fmt.Errorf("read response: %w", err))
	}
	if len(bytes.TrimSpace(slurp)) == 0 {
		return nil, nil
	}

	var decoded any
	if err := json.Unmarshal(slurp, &decoded); err != nil {
		return nil, apierr.Transport(fmt.Errorf("decode response: %w", err))
	}

	if req.Schema == nil {
		return decoded, nil
	}

	normalized, err := req.Schema.Validate(decoded)
	if err != nil {
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			return nil, apierr.Validation(ve.Fields)
		}
		return nil, apierr.Validation(err.Error())
	}
	return normalized, nil
}

// JSON runs req and decodes the (validated) result into T.
func JSON[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var zero T

	v, err := c.Do(ctx, req)
	if err != nil || v == nil {
		return zero, err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return zero, fmt.Errorf("re-encode result: %w", err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, fmt.Errorf("decode result: %w", err)
	}
	return out, nil
}
