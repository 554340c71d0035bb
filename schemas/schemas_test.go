package schemas_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fetchkit/fetchkit/schema"
	"github.com/fetchkit/fetchkit/schemas"
)

func TestUser_MatchingRecordPassesUnchanged(t *testing.T) {
	in := map[string]any{
		"id":        "550e8400-e29b-41d4-a716-446655440000",
		"name":      "Jane",
		"email":     "jane@x.com",
		"createdAt": "2024-01-01T00:00:00.000Z",
	}

	got, err := schemas.User().Validate(in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestUser_MissingEmailRejected(t *testing.T) {
	in := map[string]any{
		"id":        "550e8400-e29b-41d4-a716-446655440000",
		"name":      "Jane",
		"createdAt": "2024-01-01T00:00:00.000Z",
	}

	got, err := schemas.User().Validate(in)
	assert.Nil(t, got)

	var ve *schema.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "email")
}

func TestPost_OptionalBody(t *testing.T) {
	in := map[string]any{
		"id":        "6f1e98cc-22d1-4a3e-9d8f-0b2f6a86a001",
		"title":     "hello",
		"authorId":  "550e8400-e29b-41d4-a716-446655440000",
		"createdAt": "2024-02-02T10:00:00Z",
	}

	_, err := schemas.Post().Validate(in)
	assert.NoError(t, err)

	in["authorId"] = "not-a-uuid"
	_, err = schemas.Post().Validate(in)
	assert.Error(t, err)
}

func TestErrorEnvelope(t *testing.T) {
	_, err := schemas.ErrorEnvelope().Validate(map[string]any{"message": "not found"})
	assert.NoError(t, err)

	_, err = schemas.ErrorEnvelope().Validate(map[string]any{"message": "boom", "code": float64(42)})
	assert.NoError(t, err)

	_, err = schemas.ErrorEnvelope().Validate(map[string]any{"code": float64(42)})
	assert.Error(t, err)
}
