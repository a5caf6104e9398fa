// Package flatjson implements the object-flattening contract used by the
// wot hypermedia records: a nested extension record merges its fields
// directly into the enclosing JSON object, contributing no wrapper key.
//
// The package also defines the structured error taxonomy shared by every
// (de)serialization boundary in the module. Errors carry a path into the
// failing document and a kind that callers can match with errors.As.
package flatjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Kind classifies a (de)serialization error.
type Kind string

const (
	// SchemaViolation reports a required field missing, or a field present
	// with an incompatible shape.
	SchemaViolation Kind = "schema violation"

	// UnknownEnumVariant reports a string outside an enumeration's allowed set.
	UnknownEnumVariant Kind = "unknown enum variant"

	// KeyCollision reports two flattened sibling records binding the same key.
	KeyCollision Kind = "key collision"

	// NonObjectInFlatten reports an attempt to flatten a value that does not
	// serialize to a JSON object.
	NonObjectInFlatten Kind = "non-object in flatten"

	// OneOrManyInvalid reports a one-or-many field that is neither a scalar
	// of the element type nor an array of them.
	OneOrManyInvalid Kind = "one-or-many invalid"
)

// Error is a structured serialization error carrying a path into the
// failing document and a human-readable message.
type Error struct {
	Kind    Kind
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Kind, e.Message)
}

// Errorf builds an Error of the given kind at path.
func Errorf(kind Kind, path, format string, args ...any) *Error {
	return &Error{Kind: kind, Path: path, Message: fmt.Sprintf(format, args...)}
}

// Raw parses b as a JSON object, keeping member values unparsed.
// Non-object input is a SchemaViolation.
func Raw(b []byte) (map[string]json.RawMessage, error) {
	if !objectShaped(b) {
		return nil, Errorf(SchemaViolation, "", "expected an object, got %s", shapeOf(b))
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, WrapSchema(err)
	}
	return m, nil
}

// Object marshals v and requires the result to be object-shaped.
// Anything else is a NonObjectInFlatten error.
func Object(v any) (map[string]json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if !objectShaped(b) {
		return nil, Errorf(NonObjectInFlatten, "", "cannot flatten %s", shapeOf(b))
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Merge copies src into dst. A key bound on both sides is a KeyCollision;
// flattened siblings must have disjoint key sets.
func Merge(dst, src map[string]json.RawMessage) error {
	for k, v := range src {
		if _, dup := dst[k]; dup {
			return Errorf(KeyCollision, k, "key bound twice during flatten")
		}
		dst[k] = v
	}
	return nil
}

// MarshalFlat serializes typed and every extension into a single flat
// object holding the union of their fields. Each value must serialize to
// an object and the key sets must be pairwise disjoint.
func MarshalFlat(typed any, exts ...any) ([]byte, error) {
	out, err := Object(typed)
	if err != nil {
		return nil, err
	}
	for _, ext := range exts {
		m, err := Object(ext)
		if err != nil {
			return nil, err
		}
		if err := Merge(out, m); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

// WrapSchema converts a stdlib decoding error into a SchemaViolation,
// passing through errors that already carry a kind.
func WrapSchema(err error) error {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) {
		return err
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return Errorf(SchemaViolation, te.Field, "cannot decode %s into %s", te.Value, te.Type)
	}
	return err
}

func objectShaped(b []byte) bool {
	t := bytes.TrimLeft(b, " \t\r\n")
	return len(t) > 0 && t[0] == '{'
}

// shapeOf names the JSON shape of b for error messages.
func shapeOf(b []byte) string {
	t := bytes.TrimLeft(b, " \t\r\n")
	if len(t) == 0 {
		return "empty input"
	}
	switch t[0] {
	case '[':
		return "an array"
	case '"':
		return "a string"
	case 't', 'f':
		return "a boolean"
	case 'n':
		return "null"
	case '{':
		return "an object"
	default:
		return "a number"
	}
}
