package apierr

import (
	"net/http"
)

// APIError is the single failure shape surfaced by the fetch pipeline.
// Transport failures, non-2xx responses, and schema validation failures
// all arrive through it, so callers write one error branch and inspect
// Status/Data when they need to disambiguate.
type APIError struct {
	Message string // human-readable summary
	Status  int    // HTTP status; zero when no response was received
	Data    any    // parsed error body or validation diagnostics, if any
	Raw     string // raw (trimmed, size-limited) error body
	Cause   error  // underlying failure, if any; reachable via errors.Is/As
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}
