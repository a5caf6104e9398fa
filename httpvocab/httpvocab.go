// Package httpvocab provides the HTTP binding vocabulary used as
// extension payloads on hypermedia forms and responses. Wire field names
// carry the "htv:" vocabulary prefix verbatim.
package httpvocab

import (
	"encoding/json"

	"github.com/sifis-home/wot-go/flatjson"
)

// Method is an HTTP request method, serialized in upper case.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPut    Method = "PUT"
	MethodPost   Method = "POST"
	MethodDelete Method = "DELETE"
	MethodPatch  Method = "PATCH"
)

// UnmarshalJSON rejects strings outside the method vocabulary. Matching
// is case-sensitive: "patch" is not a method.
func (m *Method) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return flatjson.Errorf(flatjson.SchemaViolation, "htv:methodName", "expected a string")
	}
	switch Method(s) {
	case MethodGet, MethodPut, MethodPost, MethodDelete, MethodPatch:
		*m = Method(s)
		return nil
	}
	return flatjson.Errorf(flatjson.UnknownEnumVariant, "htv:methodName", "unknown method %q", s)
}

// MessageHeader describes a single HTTP header on an expected response.
type MessageHeader struct {
	FieldName  string `json:"htv:fieldName,omitempty"`
	FieldValue string `json:"htv:fieldValue,omitempty"`
}

// Response is the HTTP extension payload for expected responses: the
// headers a client should expect plus an optional status code.
type Response struct {
	Headers         []MessageHeader `json:"htv:headers,omitempty"`
	StatusCodeValue *int            `json:"htv:statusCodeValue,omitempty"`
}

func (r *Response) UnmarshalJSON(b []byte) error {
	type wire Response
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return flatjson.WrapSchema(err)
	}
	if w.StatusCodeValue != nil && *w.StatusCodeValue < 0 {
		return flatjson.Errorf(flatjson.SchemaViolation, "htv:statusCodeValue", "must be non-negative, got %d", *w.StatusCodeValue)
	}
	*r = Response(w)
	return nil
}

// ResponseBuilder assembles a Response. The zero value is ready to use;
// setters consume the builder and return it for chaining.
type ResponseBuilder struct {
	headers         []MessageHeader
	statusCodeValue *int
}

// Header appends a message header.
func (b ResponseBuilder) Header(h MessageHeader) ResponseBuilder {
	b.headers = append(b.headers, h)
	return b
}

// StatusCodeValue sets the expected status code.
func (b ResponseBuilder) StatusCodeValue(code int) ResponseBuilder {
	b.statusCodeValue = &code
	return b
}

// Build produces the Response.
func (b ResponseBuilder) Build() Response {
	return Response{Headers: b.headers, StatusCodeValue: b.statusCodeValue}
}

// Form is the HTTP extension payload for hypermedia forms.
type Form struct {
	MethodName *Method `json:"htv:methodName,omitempty"`
}

// FormBuilder assembles a Form. The zero value is ready to use.
type FormBuilder struct {
	methodName *Method
}

// MethodName sets the request method.
func (b FormBuilder) MethodName(m Method) FormBuilder {
	b.methodName = &m
	return b
}

// Build produces the Form.
func (b FormBuilder) Build() Form {
	return Form{MethodName: b.methodName}
}
