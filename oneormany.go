package wot

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/sifis-home/wot-go/flatjson"
)

// OneOrMany is a field accepted on input as either a single value or an
// array of values, and always serialized as an array. A nil OneOrMany
// means the field is absent; wire structs omit it.
type OneOrMany[T any] []T

func (o OneOrMany[T]) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]T(o))
}

func (o *OneOrMany[T]) UnmarshalJSON(b []byte) error {
	t := bytes.TrimSpace(b)
	if bytes.Equal(t, []byte("null")) {
		*o = nil
		return nil
	}
	if len(t) > 0 && t[0] == '[' {
		var many []T
		if err := json.Unmarshal(b, &many); err != nil {
			return oneOrManyErr(err)
		}
		*o = many
		return nil
	}
	var one T
	if err := json.Unmarshal(b, &one); err != nil {
		return oneOrManyErr(err)
	}
	*o = OneOrMany[T]{one}
	return nil
}

// oneOrManyErr keeps vocabulary errors (an unknown enum variant stays an
// UnknownEnumVariant) and classifies every other element failure as
// OneOrManyInvalid.
func oneOrManyErr(err error) error {
	var fe *flatjson.Error
	if errors.As(err, &fe) && fe.Kind == flatjson.UnknownEnumVariant {
		return err
	}
	return flatjson.Errorf(flatjson.OneOrManyInvalid, "", "%v", err)
}
