package schema

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Check validates one field value and returns its normalized form.
type Check func(value any) (any, error)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// String accepts any JSON string.
func String() Check {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return s, nil
	}
}

// NonEmptyString accepts a string with at least one character.
func NonEmptyString() Check {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		if s == "" {
			return nil, fmt.Errorf("must not be empty")
		}
		return s, nil
	}
}

// Number accepts any JSON number.
func Number() Check {
	return func(v any) (any, error) {
		n, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("expected number, got %T", v)
		}
		return n, nil
	}
}

// Bool accepts a JSON boolean.
func Bool() Check {
	return func(v any) (any, error) {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected boolean, got %T", v)
		}
		return b, nil
	}
}

// UUID accepts a canonical 8-4-4-4-12 hyphenated UUID string,
// case-insensitive.
func UUID() Check {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		if !IsUUID(s) {
			return nil, fmt.Errorf("%q is not a valid UUID", s)
		}
		return s, nil
	}
}

// Email accepts a syntactically plausible email address.
func Email() Check {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		if !emailRe.MatchString(s) {
			return nil, fmt.Errorf("%q is not a valid email address", s)
		}
		return s, nil
	}
}

// DateTime accepts an ISO-8601 / RFC 3339 datetime string.
func DateTime() Check {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		if _, err := time.Parse(time.RFC3339, s); err != nil {
			return nil, fmt.Errorf("%q is not an ISO-8601 datetime", s)
		}
		return s, nil
	}
}

// Match accepts a string matching the given pattern, compiled once.
func Match(pattern string) Check {
	re := regexp.MustCompile(pattern)
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		if !re.MatchString(s) {
			return nil, fmt.Errorf("%q does not match %s", s, pattern)
		}
		return s, nil
	}
}

// IsUUID reports whether s is a canonical hyphenated UUID string.
// The stricter uuid.Validate also accepts unhyphenated and URN forms,
// so length is pinned first.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
