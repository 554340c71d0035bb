package fetch

import (
	"context"
	"net/http"

	"github.com/fetchkit/fetchkit/schema"
)

// Verb conveniences over Do for the common call shapes. Callers needing
// custom headers build a Request themselves.

func (c *Client) Get(ctx context.Context, url string, s schema.Schema) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, URL: url, Schema: s})
}

func (c *Client) Post(ctx context.Context, url, body string, s schema.Schema) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, URL: url, Body: body, Schema: s})
}

func (c *Client) Put(ctx context.Context, url, body string, s schema.Schema) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, URL: url, Body: body, Schema: s})
}

func (c *Client) Patch(ctx context.Context, url, body string, s schema.Schema) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodPatch, URL: url, Body: body, Schema: s})
}

func (c *Client) Delete(ctx context.Context, url string) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, URL: url})
}
