// Package hlist provides a heterogeneous list whose elements keep their
// static types and whose JSON form is a single flat object.
//
// A list is built from Cell pairs terminated by Unit. Serializing a list
// merges the fields of every element into one object with no wrapper
// keys; deserializing hands the same object to every element, each
// consuming the fields it recognizes. Unit contributes and consumes
// nothing, so wrapping a record in a one-element list leaves its JSON
// representation unchanged.
package hlist

import (
	"encoding/json"

	"github.com/sifis-home/wot-go/flatjson"
)

// Unit is the terminal tail of every heterogeneous list. The zero value
// is the only value; any two Units are equal.
type Unit struct{}

// Build returns the Unit itself. Unit is its own builder, which lets
// lists of builders compose the same way lists of records do.
func (Unit) Build() Unit { return Unit{} }

// MarshalJSON emits an empty object.
func (Unit) MarshalJSON() ([]byte, error) { return []byte("{}"), nil }

// UnmarshalJSON accepts any JSON object and consumes zero fields.
func (*Unit) UnmarshalJSON(b []byte) error {
	_, err := flatjson.Raw(b)
	return err
}

// Cell is a pair of a head record and a tail list (another Cell or Unit).
// Both sides flatten into the enclosing JSON object, so the key sets of
// head and tail must be disjoint and both must serialize to objects.
type Cell[H, T any] struct {
	Head H
	Tail T
}

// NewHead builds a one-element list.
func NewHead[H any](head H) Cell[H, Unit] {
	return Cell[H, Unit]{Head: head}
}

// Prepend pushes value onto list, moving the previous list into the tail.
func Prepend[V, H, T any](list Cell[H, T], value V) Cell[V, Cell[H, T]] {
	return Cell[V, Cell[H, T]]{Head: value, Tail: list}
}

// SplitHead deconstructs the list into its head and tail.
func (c Cell[H, T]) SplitHead() (H, T) {
	return c.Head, c.Tail
}

// Refs returns a cell of pointers into c, mirroring its shape one level
// deep; call Refs on the tail pointer to descend further. The pointers
// stay valid for reading and writing as long as c does.
//
// Refs is a package-level function rather than a method: a method
// returning Cell[*H, *T] would make every instantiation of Cell require
// another, which the compiler rejects as an instantiation cycle.
func Refs[H, T any](c *Cell[H, T]) Cell[*H, *T] {
	return Cell[*H, *T]{Head: &c.Head, Tail: &c.Tail}
}

// MarshalJSON emits one flat object holding the union of the head's and
// the tail's fields. A side that does not serialize to an object is a
// NonObjectInFlatten error; a key bound by both sides is a KeyCollision.
func (c Cell[H, T]) MarshalJSON() ([]byte, error) {
	return flatjson.MarshalFlat(c.Head, c.Tail)
}

// UnmarshalJSON reads head and tail from the same flat object. Each side
// consumes the fields it recognizes and ignores the rest, leaving them
// available for the other side or for an enclosing record.
func (c *Cell[H, T]) UnmarshalJSON(b []byte) error {
	if _, err := flatjson.Raw(b); err != nil {
		return err
	}
	if err := json.Unmarshal(b, &c.Head); err != nil {
		return flatjson.WrapSchema(err)
	}
	if err := json.Unmarshal(b, &c.Tail); err != nil {
		return flatjson.WrapSchema(err)
	}
	return nil
}
