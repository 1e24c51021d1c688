// Package validation checks raw request payloads against per-entity JSON
// Schemas before they are bound and reach storage. Every structural failure
// is reported at once, not one at a time.
package validation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
)

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error carries every field failure of one payload.
type Error struct {
	Kind   string
	Fields []FieldError
}

func (e *Error) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "invalid payload"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "invalid " + e.Kind + " payload: " + strings.Join(parts, "; ")
}

// Registry holds the compiled schema per entity kind.
type Registry struct {
	schemas map[string]*jsonschema.Schema
}

func NewRegistry() (*Registry, error) {
	r := &Registry{schemas: make(map[string]*jsonschema.Schema, len(schemaDocs))}
	for kind, doc := range schemaDocs {
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal([]byte(doc), rs); err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", kind, err)
		}
		r.schemas[kind] = rs
	}
	return r, nil
}

// Validate checks payload against the schema for kind. It returns *Error
// with one entry per failing field, or a plain error for malformed JSON and
// unknown kinds.
func (r *Registry) Validate(ctx context.Context, kind string, payload []byte) error {
	rs, ok := r.schemas[kind]
	if !ok {
		return fmt.Errorf("no schema for kind %q", kind)
	}
	if !json.Valid(payload) {
		return &Error{Kind: kind, Fields: []FieldError{{Field: "body", Reason: "malformed JSON"}}}
	}

	keyErrs, err := rs.ValidateBytes(ctx, payload)
	if err != nil {
		return fmt.Errorf("validate %s payload: %w", kind, err)
	}
	if len(keyErrs) == 0 {
		return nil
	}

	fields := make([]FieldError, 0, len(keyErrs))
	for _, ke := range keyErrs {
		fields = append(fields, FieldError{
			Field:  fieldFromPath(ke.PropertyPath),
			Reason: ke.Message,
		})
	}
	return &Error{Kind: kind, Fields: fields}
}

func fieldFromPath(path string) string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return "body"
	}
	return path
}
