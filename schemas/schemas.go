// Package schemas holds the shared response shapes for the example API
// resources. They are plain data descriptions, supplied by calling code
// to the fetch pipeline.
package schemas

import "github.com/fetchkit/fetchkit/schema"

// User describes a user record: UUID id, name, email, ISO-8601
// creation timestamp.
func User() *schema.Object {
	return schema.NewObject(
		schema.Field{Name: "id", Required: true, Check: schema.UUID()},
		schema.Field{Name: "name", Required: true, Check: schema.NonEmptyString()},
		schema.Field{Name: "email", Required: true, Check: schema.Email()},
		schema.Field{Name: "createdAt", Required: true, Check: schema.DateTime()},
	)
}

// Post describes a post record authored by a user.
func Post() *schema.Object {
	return schema.NewObject(
		schema.Field{Name: "id", Required: true, Check: schema.UUID()},
		schema.Field{Name: "title", Required: true, Check: schema.NonEmptyString()},
		schema.Field{Name: "body", Required: false, Check: schema.String()},
		schema.Field{Name: "authorId", Required: true, Check: schema.UUID()},
		schema.Field{Name: "createdAt", Required: true, Check: schema.DateTime()},
	)
}

// ErrorEnvelope describes the error body the example API returns on
// failures: a required message plus an optional numeric code.
func ErrorEnvelope() *schema.Object {
	return schema.NewObject(
		schema.Field{Name: "message", Required: true, Check: schema.NonEmptyString()},
		schema.Field{Name: "code", Required: false, Check: schema.Number()},
	)
}
