package wot

import "github.com/sifis-home/wot-go/hlist"

// Builder is implemented by types that assemble a record of type R.
// Builders are usable from their zero value; setters consume the builder
// and return it for chaining, and Build consumes it to produce the
// record. Builder methods never fail.
//
// hlist.Unit is its own builder, so extension slots default to None and
// heterogeneous lists of builders compose the same way lists of records
// do. Records expose the other half of the pairing through package-level
// constructors (NewExpectedResponseBuilder, NewFormBuilder, ...).
type Builder[R any] interface {
	Build() R
}

// None is the empty extension payload: it contributes no JSON keys and
// consumes none.
type None = hlist.Unit
