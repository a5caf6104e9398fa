package wot

import (
	"encoding/json"

	"github.com/sifis-home/wot-go/flatjson"
)

// ExpectedResponse describes the response a client should expect when
// submitting a form. T is the extension slot, flattened into the JSON
// representation.
type ExpectedResponse[T any] struct {
	ContentType string
	Other       T
}

type expectedResponseWire struct {
	ContentType string `json:"contentType"`
}

// MarshalJSON emits one flat object: the typed fields plus the fields of
// the extension.
func (r ExpectedResponse[T]) MarshalJSON() ([]byte, error) {
	return flatjson.MarshalFlat(expectedResponseWire{ContentType: r.ContentType}, r.Other)
}

// UnmarshalJSON reads the typed fields and the extension from the same
// flat object. contentType is required.
func (r *ExpectedResponse[T]) UnmarshalJSON(b []byte) error {
	raw, err := flatjson.Raw(b)
	if err != nil {
		return err
	}
	if _, ok := raw["contentType"]; !ok {
		return flatjson.Errorf(flatjson.SchemaViolation, "contentType", "required field missing")
	}
	var w expectedResponseWire
	if err := json.Unmarshal(b, &w); err != nil {
		return flatjson.WrapSchema(err)
	}
	var other T
	if err := json.Unmarshal(b, &other); err != nil {
		return flatjson.WrapSchema(err)
	}
	*r = ExpectedResponse[T]{ContentType: w.ContentType, Other: other}
	return nil
}

// ExpectedResponseBuilder assembles an ExpectedResponse. B builds the
// extension slot. The zero value is ready to use.
type ExpectedResponseBuilder[T any, B Builder[T]] struct {
	contentType string
	other       B
}

// NewExpectedResponseBuilder returns an empty builder.
func NewExpectedResponseBuilder[T any, B Builder[T]]() ExpectedResponseBuilder[T, B] {
	return ExpectedResponseBuilder[T, B]{}
}

// ContentType sets the expected content type.
func (b ExpectedResponseBuilder[T, B]) ContentType(ct string) ExpectedResponseBuilder[T, B] {
	b.contentType = ct
	return b
}

// Other applies f to the extension builder.
func (b ExpectedResponseBuilder[T, B]) Other(f func(B) B) ExpectedResponseBuilder[T, B] {
	b.other = f(b.other)
	return b
}

// Build produces the record, building the extension recursively.
func (b ExpectedResponseBuilder[T, B]) Build() ExpectedResponse[T] {
	return ExpectedResponse[T]{ContentType: b.contentType, Other: b.other.Build()}
}

// AdditionalExpectedResponse describes an additional, usually
// error-class, response a client may receive. T is the extension slot,
// flattened into the JSON representation.
type AdditionalExpectedResponse[T any] struct {
	// Success reports whether this response indicates success.
	// Absent on input means false; the key is always emitted on output.
	Success     bool
	ContentType string
	Other       T
}

type additionalExpectedResponseWire struct {
	Success     bool   `json:"success"`
	ContentType string `json:"contentType"`
}

func (r AdditionalExpectedResponse[T]) MarshalJSON() ([]byte, error) {
	w := additionalExpectedResponseWire{Success: r.Success, ContentType: r.ContentType}
	return flatjson.MarshalFlat(w, r.Other)
}

func (r *AdditionalExpectedResponse[T]) UnmarshalJSON(b []byte) error {
	raw, err := flatjson.Raw(b)
	if err != nil {
		return err
	}
	if _, ok := raw["contentType"]; !ok {
		return flatjson.Errorf(flatjson.SchemaViolation, "contentType", "required field missing")
	}
	var w additionalExpectedResponseWire
	if err := json.Unmarshal(b, &w); err != nil {
		return flatjson.WrapSchema(err)
	}
	var other T
	if err := json.Unmarshal(b, &other); err != nil {
		return flatjson.WrapSchema(err)
	}
	*r = AdditionalExpectedResponse[T]{Success: w.Success, ContentType: w.ContentType, Other: other}
	return nil
}

// AdditionalExpectedResponseBuilder assembles an
// AdditionalExpectedResponse. The zero value is ready to use.
type AdditionalExpectedResponseBuilder[T any, B Builder[T]] struct {
	success     bool
	contentType string
	other       B
}

// NewAdditionalExpectedResponseBuilder returns an empty builder.
func NewAdditionalExpectedResponseBuilder[T any, B Builder[T]]() AdditionalExpectedResponseBuilder[T, B] {
	return AdditionalExpectedResponseBuilder[T, B]{}
}

// Success marks the response as a success response.
func (b AdditionalExpectedResponseBuilder[T, B]) Success(s bool) AdditionalExpectedResponseBuilder[T, B] {
	b.success = s
	return b
}

// ContentType sets the expected content type.
func (b AdditionalExpectedResponseBuilder[T, B]) ContentType(ct string) AdditionalExpectedResponseBuilder[T, B] {
	b.contentType = ct
	return b
}

// Other applies f to the extension builder.
func (b AdditionalExpectedResponseBuilder[T, B]) Other(f func(B) B) AdditionalExpectedResponseBuilder[T, B] {
	b.other = f(b.other)
	return b
}

// Build produces the record, building the extension recursively.
func (b AdditionalExpectedResponseBuilder[T, B]) Build() AdditionalExpectedResponse[T] {
	return AdditionalExpectedResponse[T]{
		Success:     b.success,
		ContentType: b.contentType,
		Other:       b.other.Build(),
	}
}
