package wot

import (
	"encoding/json"

	"github.com/sifis-home/wot-go/flatjson"
)

// DefaultContentType is assumed when a form document omits contentType.
const DefaultContentType = "application/json"

// Form describes one way a client can interact with a resource. T is the
// form's extension slot, flattened into the JSON representation; E is
// the extension slot of the nested response records.
type Form[T, E any] struct {
	// Op is the set of allowed operations. A nil Op means the
	// environment's default operation set applies; it is omitted when
	// serializing. Use OpsOrDefault to resolve it.
	Op OneOrMany[Operation]

	// Href is the target URI, possibly a URI template. Required.
	Href string

	ContentType   string
	ContentCoding string
	Subprotocol   string

	// Security and Scopes name security schemes and scopes by reference.
	Security OneOrMany[string]
	Scopes   OneOrMany[string]

	Response           *ExpectedResponse[E]
	AdditionalResponse *AdditionalExpectedResponse[E]

	Other T
}

// OpsOrDefault returns the form's operation set, or def when the
// document left op to the environment default. The default set belongs
// to the enclosing vocabulary; this package only requires that one
// exist.
func (f Form[T, E]) OpsOrDefault(def ...Operation) []Operation {
	if f.Op != nil {
		return f.Op
	}
	return def
}

type formWire[E any] struct {
	Op                 OneOrMany[Operation]           `json:"op,omitempty"`
	Href               string                         `json:"href"`
	ContentType        string                         `json:"contentType"`
	ContentCoding      string                         `json:"contentCoding,omitempty"`
	Subprotocol        string                         `json:"subprotocol,omitempty"`
	Security           OneOrMany[string]              `json:"security,omitempty"`
	Scopes             OneOrMany[string]              `json:"scopes,omitempty"`
	Response           *ExpectedResponse[E]           `json:"response,omitempty"`
	AdditionalResponse *AdditionalExpectedResponse[E] `json:"additionalResponse,omitempty"`
}

// MarshalJSON emits one flat object: the typed fields plus the fields of
// the extension. contentType is always emitted, falling back to
// DefaultContentType when unset.
func (f Form[T, E]) MarshalJSON() ([]byte, error) {
	w := formWire[E]{
		Op:                 f.Op,
		Href:               f.Href,
		ContentType:        f.ContentType,
		ContentCoding:      f.ContentCoding,
		Subprotocol:        f.Subprotocol,
		Security:           f.Security,
		Scopes:             f.Scopes,
		Response:           f.Response,
		AdditionalResponse: f.AdditionalResponse,
	}
	if w.ContentType == "" {
		w.ContentType = DefaultContentType
	}
	return flatjson.MarshalFlat(w, f.Other)
}

// UnmarshalJSON reads the typed fields and the extension from the same
// flat object. href is required; a missing contentType key defaults to
// DefaultContentType. Fields neither side recognizes are ignored.
func (f *Form[T, E]) UnmarshalJSON(b []byte) error {
	raw, err := flatjson.Raw(b)
	if err != nil {
		return err
	}
	if _, ok := raw["href"]; !ok {
		return flatjson.Errorf(flatjson.SchemaViolation, "href", "required field missing")
	}
	var w formWire[E]
	if err := json.Unmarshal(b, &w); err != nil {
		return flatjson.WrapSchema(err)
	}
	if _, ok := raw["contentType"]; !ok {
		w.ContentType = DefaultContentType
	}
	var other T
	if err := json.Unmarshal(b, &other); err != nil {
		return flatjson.WrapSchema(err)
	}
	*f = Form[T, E]{
		Op:                 w.Op,
		Href:               w.Href,
		ContentType:        w.ContentType,
		ContentCoding:      w.ContentCoding,
		Subprotocol:        w.Subprotocol,
		Security:           w.Security,
		Scopes:             w.Scopes,
		Response:           w.Response,
		AdditionalResponse: w.AdditionalResponse,
		Other:              other,
	}
	return nil
}

// FormBuilder assembles a Form. TB builds the form's extension slot and
// EB the extension slot of the nested responses. The zero value is ready
// to use.
type FormBuilder[T, E any, TB Builder[T], EB Builder[E]] struct {
	op                 OneOrMany[Operation]
	href               string
	contentType        string
	contentCoding      string
	subprotocol        string
	security           OneOrMany[string]
	scopes             OneOrMany[string]
	response           *ExpectedResponseBuilder[E, EB]
	additionalResponse *AdditionalExpectedResponseBuilder[E, EB]
	other              TB
}

// NewFormBuilder returns an empty builder.
func NewFormBuilder[T, E any, TB Builder[T], EB Builder[E]]() FormBuilder[T, E, TB, EB] {
	return FormBuilder[T, E, TB, EB]{}
}

// Op sets the allowed operations, replacing any previous set.
func (b FormBuilder[T, E, TB, EB]) Op(ops ...Operation) FormBuilder[T, E, TB, EB] {
	b.op = ops
	return b
}

// Href sets the target URI.
func (b FormBuilder[T, E, TB, EB]) Href(href string) FormBuilder[T, E, TB, EB] {
	b.href = href
	return b
}

// ContentType sets the payload content type.
func (b FormBuilder[T, E, TB, EB]) ContentType(ct string) FormBuilder[T, E, TB, EB] {
	b.contentType = ct
	return b
}

// ContentCoding sets the payload content coding.
func (b FormBuilder[T, E, TB, EB]) ContentCoding(cc string) FormBuilder[T, E, TB, EB] {
	b.contentCoding = cc
	return b
}

// Subprotocol sets the subprotocol name.
func (b FormBuilder[T, E, TB, EB]) Subprotocol(sp string) FormBuilder[T, E, TB, EB] {
	b.subprotocol = sp
	return b
}

// Security sets the security scheme names, replacing any previous set.
func (b FormBuilder[T, E, TB, EB]) Security(names ...string) FormBuilder[T, E, TB, EB] {
	b.security = names
	return b
}

// Scopes sets the scope names, replacing any previous set.
func (b FormBuilder[T, E, TB, EB]) Scopes(names ...string) FormBuilder[T, E, TB, EB] {
	b.scopes = names
	return b
}

// Response configures the expected response through f.
func (b FormBuilder[T, E, TB, EB]) Response(f func(ExpectedResponseBuilder[E, EB]) ExpectedResponseBuilder[E, EB]) FormBuilder[T, E, TB, EB] {
	rb := NewExpectedResponseBuilder[E, EB]()
	if b.response != nil {
		rb = *b.response
	}
	rb = f(rb)
	b.response = &rb
	return b
}

// AdditionalResponse configures the additional expected response through f.
func (b FormBuilder[T, E, TB, EB]) AdditionalResponse(f func(AdditionalExpectedResponseBuilder[E, EB]) AdditionalExpectedResponseBuilder[E, EB]) FormBuilder[T, E, TB, EB] {
	rb := NewAdditionalExpectedResponseBuilder[E, EB]()
	if b.additionalResponse != nil {
		rb = *b.additionalResponse
	}
	rb = f(rb)
	b.additionalResponse = &rb
	return b
}

// Other applies f to the extension builder.
func (b FormBuilder[T, E, TB, EB]) Other(f func(TB) TB) FormBuilder[T, E, TB, EB] {
	b.other = f(b.other)
	return b
}

// Build produces the record, building the extension and any nested
// response builders. An unset contentType becomes DefaultContentType.
func (b FormBuilder[T, E, TB, EB]) Build() Form[T, E] {
	f := Form[T, E]{
		Op:            b.op,
		Href:          b.href,
		ContentType:   b.contentType,
		ContentCoding: b.contentCoding,
		Subprotocol:   b.subprotocol,
		Security:      b.security,
		Scopes:        b.scopes,
		Other:         b.other.Build(),
	}
	if f.ContentType == "" {
		f.ContentType = DefaultContentType
	}
	if b.response != nil {
		r := b.response.Build()
		f.Response = &r
	}
	if b.additionalResponse != nil {
		r := b.additionalResponse.Build()
		f.AdditionalResponse = &r
	}
	return f
}
