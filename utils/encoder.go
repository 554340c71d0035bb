package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// EncodeJSON serializes body for use as a request payload. HTML escaping
// is off so URLs inside payloads survive untouched.
func EncodeJSON(body any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return "", fmt.Errorf("encode body: %w", err)
	}
	// Encode appends a newline; request bodies don't want it.
	return strings.TrimRight(buf.String(), "\n"), nil
}
