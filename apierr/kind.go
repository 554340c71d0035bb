package apierr

import (
	"errors"
	"io"
	"net/http"
	"syscall"
)

// The three failure taxonomies share one shape; these helpers inspect
// Status/Data the same way a caller would.

// IsTransport reports whether err is a failure that happened before any
// HTTP response was received.
func IsTransport(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.Status == 0 && e.Data == nil
}

// IsHTTP reports whether err is a received response with a non-success
// status code.
func IsHTTP(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.Status != 0
}

// IsValidation reports whether err is a successful response whose body
// failed schema checks.
func IsValidation(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.Status == 0 && e.Data != nil
}

// IsRetryable says "worth another shot?". The caller owns the retry
// loop; nothing in this module retries on its own.
func IsRetryable(err error) bool {
	// timeouts from net/http, http2, tls, etc.
	var to interface{ Timeout() bool }
	if errors.As(err, &to) && to.Timeout() {
		return true
	}

	// flaky connections / short reads
	if errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusRequestTimeout, // 408
			http.StatusTooEarly,            // 425
			http.StatusTooManyRequests,     // 429
			http.StatusInternalServerError, // 500
			http.StatusBadGateway,          // 502
			http.StatusServiceUnavailable,  // 503
			http.StatusGatewayTimeout:      // 504
			return true
		}
	}
	return false
}
