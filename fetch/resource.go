package fetch

import (
	"context"
	"fmt"
	"strings"

	"github.com/fetchkit/fetchkit/schema"
	"github.com/fetchkit/fetchkit/utils"
)

// Resource wraps the CRUD call shapes for one collection endpoint, e.g.
// "api/users". Preconditions (UUID path ids, required write fields)
// fail fast with a plain error before any network call; everything that
// does reach the network flows through the usual Do pipeline.
type Resource struct {
	client   *Client
	path     string
	schema   schema.Schema
	required []string
}

// ResourceOption configures a Resource at construction time.
type ResourceOption func(*Resource)

// WithRequired declares the fields a Create/Update payload must carry.
func WithRequired(fields ...string) ResourceOption {
	return func(r *Resource) {
		r.required = append(r.required, fields...)
	}
}

// NewResource builds a Resource for a collection path. s validates
// single-record responses; list responses are validated element-wise.
func NewResource(c *Client, path string, s schema.Schema, opts ...ResourceOption) *Resource {
	r := &Resource{
		client: c,
		path:   strings.Trim(path, "/"),
		schema: s,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get fetches one record by UUID.
func (r *Resource) Get(ctx context.Context, id string) (any, error) {
	if err := r.checkID(id); err != nil {
		return nil, err
	}
	return r.client.Get(ctx, r.itemPath(id), r.schema)
}

// List fetches the whole collection, validating each element when the
// resource carries a schema.
func (r *Resource) List(ctx context.Context) (any, error) {
	var s schema.Schema
	if r.schema != nil {
		s = schema.NewArray(r.schema)
	}
	return r.client.Get(ctx, r.path, s)
}

// Create POSTs a new record after checking required-field presence.
func (r *Resource) Create(ctx context.Context, payload map[string]any) (any, error) {
	if err := r.checkRequired(payload); err != nil {
		return nil, err
	}
	body, err := utils.EncodeJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", r.path, err)
	}
	return r.client.Post(ctx, r.path, body, r.schema)
}

// Update PUTs a full replacement of the record.
func (r *Resource) Update(ctx context.Context, id string, payload map[string]any) (any, error) {
	if err := r.checkID(id); err != nil {
		return nil, err
	}
	if err := r.checkRequired(payload); err != nil {
		return nil, err
	}
	body, err := utils.EncodeJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", r.path, err)
	}
	return r.client.Put(ctx, r.itemPath(id), body, r.schema)
}

// Patch PATCHes a partial update; no required-field check applies.
func (r *Resource) Patch(ctx context.Context, id string, partial map[string]any) (any, error) {
	if err := r.checkID(id); err != nil {
		return nil, err
	}
	body, err := utils.EncodeJSON(partial)
	if err != nil {
		return nil, fmt.Errorf("patch %s: %w", r.path, err)
	}
	return r.client.Patch(ctx, r.itemPath(id), body, r.schema)
}

// Delete removes one record by UUID. A 204 with an empty body is fine.
func (r *Resource) Delete(ctx context.Context, id string) error {
	if err := r.checkID(id); err != nil {
		return err
	}
	_, err := r.client.Delete(ctx, r.itemPath(id))
	return err
}

func (r *Resource) itemPath(id string) string {
	return r.path + "/" + id
}

func (r *Resource) checkID(id string) error {
	if !schema.IsUUID(id) {
		return fmt.Errorf("%s: invalid id %q: must be a UUID", r.path, id)
	}
	return nil
}

func (r *Resource) checkRequired(payload map[string]any) error {
	for _, f := range r.required {
		if _, ok := payload[f]; !ok {
			return fmt.Errorf("%s: missing required field %q", r.path, f)
		}
	}
	return nil
}
