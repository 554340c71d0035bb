package schema

import (
	"errors"
	"fmt"
)

// Field describes one property of an object schema. Check may be nil,
// in which case only presence is enforced.
type Field struct {
	Name     string
	Required bool
	Check    Check
}

// Object is a data-described schema for a JSON object: a field list
// with per-field checks. Unknown keys are trimmed from the normalized
// value rather than rejected.
type Object struct {
	fields []Field
}

// NewObject builds an object schema from its field list.
func NewObject(fields ...Field) *Object {
	return &Object{fields: fields}
}

// Fields returns the declared field list.
func (o *Object) Fields() []Field {
	return o.fields
}

// RequiredFields returns the names of all required fields, in
// declaration order.
func (o *Object) RequiredFields() []string {
	var names []string
	for _, f := range o.fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

func (o *Object) Validate(value any) (any, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &ValidationError{Fields: map[string]string{
			".": fmt.Sprintf("expected object, got %T", value),
		}}
	}

	diags := map[string]string{}
	normalized := make(map[string]any, len(o.fields))

	for _, f := range o.fields {
		v, present := obj[f.Name]
		if !present {
			if f.Required {
				diags[f.Name] = "required field is missing"
			}
			continue
		}
		if f.Check != nil {
			got, err := f.Check(v)
			if err != nil {
				diags[f.Name] = err.Error()
				continue
			}
			v = got
		}
		normalized[f.Name] = v
	}

	if len(diags) > 0 {
		return nil, &ValidationError{Fields: diags}
	}
	return normalized, nil
}

// Array is a schema for a JSON array whose elements all satisfy a
// single element schema.
type Array struct {
	elem Schema
}

// NewArray builds an array schema around an element schema.
func NewArray(elem Schema) *Array {
	return &Array{elem: elem}
}

func (a *Array) Validate(value any) (any, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, &ValidationError{Fields: map[string]string{
			".": fmt.Sprintf("expected array, got %T", value),
		}}
	}

	diags := map[string]string{}
	normalized := make([]any, len(list))

	for i, item := range list {
		got, err := a.elem.Validate(item)
		if err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				for k, v := range ve.Fields {
					diags[fmt.Sprintf("[%d].%s", i, k)] = v
				}
			} else {
				diags[fmt.Sprintf("[%d]", i)] = err.Error()
			}
			continue
		}
		normalized[i] = got
	}

	if len(diags) > 0 {
		return nil, &ValidationError{Fields: diags}
	}
	return normalized, nil
}
