package wot

import (
	"encoding/json"

	"github.com/sifis-home/wot-go/flatjson"
)

// InteractionAffordance describes what a client can do with a resource:
// semantic tags, human-readable metadata, and the forms through which
// the interaction happens. T is the affordance's extension slot,
// flattened into the JSON representation; F and R parameterize the
// nested forms and their responses.
type InteractionAffordance[T, F, R any] struct {
	// AtType holds the semantic @type tags.
	AtType OneOrMany[string]

	Title       string
	Description string

	Forms []Form[F, R]

	Other T
}

type interactionAffordanceWire[F, R any] struct {
	AtType      OneOrMany[string] `json:"@type,omitempty"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Forms       []Form[F, R]      `json:"forms"`
}

// MarshalJSON emits one flat object: the typed fields plus the fields of
// the extension. forms is always emitted, as an empty array when the
// affordance has none.
func (a InteractionAffordance[T, F, R]) MarshalJSON() ([]byte, error) {
	w := interactionAffordanceWire[F, R]{
		AtType:      a.AtType,
		Title:       a.Title,
		Description: a.Description,
		Forms:       a.Forms,
	}
	if w.Forms == nil {
		w.Forms = []Form[F, R]{}
	}
	return flatjson.MarshalFlat(w, a.Other)
}

// UnmarshalJSON reads the typed fields and the extension from the same
// flat object. forms is required.
func (a *InteractionAffordance[T, F, R]) UnmarshalJSON(b []byte) error {
	raw, err := flatjson.Raw(b)
	if err != nil {
		return err
	}
	if _, ok := raw["forms"]; !ok {
		return flatjson.Errorf(flatjson.SchemaViolation, "forms", "required field missing")
	}
	var w interactionAffordanceWire[F, R]
	if err := json.Unmarshal(b, &w); err != nil {
		return flatjson.WrapSchema(err)
	}
	var other T
	if err := json.Unmarshal(b, &other); err != nil {
		return flatjson.WrapSchema(err)
	}
	*a = InteractionAffordance[T, F, R]{
		AtType:      w.AtType,
		Title:       w.Title,
		Description: w.Description,
		Forms:       w.Forms,
		Other:       other,
	}
	return nil
}

// InteractionAffordanceBuilder assembles an InteractionAffordance. TB
// builds the affordance's extension slot, FB the extension slot of each
// form, RB the extension slot of the forms' responses. The zero value is
// ready to use.
type InteractionAffordanceBuilder[T, F, R any, TB Builder[T], FB Builder[F], RB Builder[R]] struct {
	atType      OneOrMany[string]
	title       string
	description string
	forms       []FormBuilder[F, R, FB, RB]
	other       TB
}

// NewInteractionAffordanceBuilder returns an empty builder.
func NewInteractionAffordanceBuilder[T, F, R any, TB Builder[T], FB Builder[F], RB Builder[R]]() InteractionAffordanceBuilder[T, F, R, TB, FB, RB] {
	return InteractionAffordanceBuilder[T, F, R, TB, FB, RB]{}
}

// AtType sets the semantic @type tags, replacing any previous set.
func (b InteractionAffordanceBuilder[T, F, R, TB, FB, RB]) AtType(tags ...string) InteractionAffordanceBuilder[T, F, R, TB, FB, RB] {
	b.atType = tags
	return b
}

// Title sets the human-readable title.
func (b InteractionAffordanceBuilder[T, F, R, TB, FB, RB]) Title(title string) InteractionAffordanceBuilder[T, F, R, TB, FB, RB] {
	b.title = title
	return b
}

// Description sets the human-readable description.
func (b InteractionAffordanceBuilder[T, F, R, TB, FB, RB]) Description(desc string) InteractionAffordanceBuilder[T, F, R, TB, FB, RB] {
	b.description = desc
	return b
}

// Form appends a form configured through f.
func (b InteractionAffordanceBuilder[T, F, R, TB, FB, RB]) Form(f func(FormBuilder[F, R, FB, RB]) FormBuilder[F, R, FB, RB]) InteractionAffordanceBuilder[T, F, R, TB, FB, RB] {
	b.forms = append(b.forms, f(NewFormBuilder[F, R, FB, RB]()))
	return b
}

// Other applies f to the extension builder.
func (b InteractionAffordanceBuilder[T, F, R, TB, FB, RB]) Other(f func(TB) TB) InteractionAffordanceBuilder[T, F, R, TB, FB, RB] {
	b.other = f(b.other)
	return b
}

// Build produces the record, building the extension and every form.
func (b InteractionAffordanceBuilder[T, F, R, TB, FB, RB]) Build() InteractionAffordance[T, F, R] {
	a := InteractionAffordance[T, F, R]{
		AtType:      b.atType,
		Title:       b.title,
		Description: b.description,
		Other:       b.other.Build(),
	}
	for _, fb := range b.forms {
		a.Forms = append(a.Forms, fb.Build())
	}
	return a
}
