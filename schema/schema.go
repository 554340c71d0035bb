// Package schema validates decoded JSON values against data-described
// shapes. Schemas are stateless and safe to share across any number of
// concurrent calls.
package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Schema checks a decoded JSON value and returns its normalized form.
// On failure the returned error is a *ValidationError; no partial value
// is ever returned alongside it.
type Schema interface {
	Validate(value any) (any, error)
}

// ValidationError reports every field that failed, keyed by field path.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
