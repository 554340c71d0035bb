package apierr

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse builds the HTTP-failure error for a non-2xx response.
// slurp is already size-limited; status is the HTTP status.
//
// The error body is parsed as JSON purely for diagnostics: when it does
// not parse, Data stays nil rather than raising a secondary failure.
// "No body" and "unparseable body" are deliberately not distinguished.
func Parse(slurp []byte, status int) *APIError {
	trimmed := strings.TrimSpace(string(slurp))

	e := &APIError{
		Status:  status,
		Message: fmt.Sprintf("request failed with status %d", status),
		Raw:     trimmed,
	}

	var body any
	if err := json.Unmarshal(slurp, &body); err == nil {
		e.Data = body
		if msg := serverMessage(body); msg != "" {
			e.Message = fmt.Sprintf("request failed with status %d: %s", status, msg)
		}
	}
	return e
}

// Transport builds the error for a request that never completed
// (DNS, connection refused, canceled context). No status, no data.
// The cause stays wrapped so timeout/EOF checks still see it.
func Transport(err error) *APIError {
	return &APIError{Message: err.Error(), Cause: err}
}

// Validation builds the error for a 2xx response whose body failed
// schema checks. Data carries the per-field diagnostics.
func Validation(diags any) *APIError {
	return &APIError{
		Message: "response validation failed",
		Data:    diags,
	}
}

// serverMessage digs a human-readable message out of common error
// envelopes: {"message": "..."} and {"error": {"message": "..."}}.
func serverMessage(body any) string {
	obj, ok := body.(map[string]any)
	if !ok {
		return ""
	}
	if s, ok := obj["message"].(string); ok && s != "" {
		return s
	}
	if nested, ok := obj["error"].(map[string]any); ok {
		if s, ok := nested["message"].(string); ok {
			return s
		}
	}
	if s, ok := obj["error"].(string); ok {
		return s
	}
	return ""
}
