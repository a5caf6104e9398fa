package flatjson

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObject_RequiresObjectShape(t *testing.T) {
	cases := []struct {
		name  string
		value any
	}{
		{"number", 42},
		{"string", "s"},
		{"array", []int{1, 2}},
		{"bool", true},
		{"null", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Object(tc.value)
			var fe *Error
			if !errors.As(err, &fe) {
				t.Fatalf("expected Error, got %T: %v", err, err)
			}
			if fe.Kind != NonObjectInFlatten {
				t.Fatalf("expected NonObjectInFlatten, got %q", fe.Kind)
			}
		})
	}
}

func TestObject_KeepsMembersRaw(t *testing.T) {
	m, err := Object(map[string]any{"a": 1, "b": "x"})
	if err != nil {
		t.Fatalf("object: %v", err)
	}
	if string(m["a"]) != "1" || string(m["b"]) != `"x"` {
		t.Fatalf("unexpected members: %v", m)
	}
}

func TestMerge_DisjointUnion(t *testing.T) {
	dst := map[string]json.RawMessage{"a": json.RawMessage("1")}
	src := map[string]json.RawMessage{"b": json.RawMessage("2")}
	if err := Merge(dst, src); err != nil {
		t.Fatalf("merge: %v", err)
	}
	want := map[string]json.RawMessage{
		"a": json.RawMessage("1"),
		"b": json.RawMessage("2"),
	}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_Collision(t *testing.T) {
	dst := map[string]json.RawMessage{"a": json.RawMessage("1")}
	src := map[string]json.RawMessage{"a": json.RawMessage("2")}
	err := Merge(dst, src)
	var fe *Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected Error, got %T: %v", err, err)
	}
	if fe.Kind != KeyCollision {
		t.Fatalf("expected KeyCollision, got %q", fe.Kind)
	}
	if fe.Path != "a" {
		t.Fatalf("expected path %q, got %q", "a", fe.Path)
	}
}

func TestMarshalFlat_MergesExtensions(t *testing.T) {
	type typed struct {
		A int `json:"a"`
	}
	type ext struct {
		B string `json:"b"`
	}

	out, err := MarshalFlat(typed{1}, ext{"x"})
	if err != nil {
		t.Fatalf("marshal flat: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	want := map[string]any{"a": float64(1), "b": "x"}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("object mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalFlat_CollisionAcrossExtensions(t *testing.T) {
	type typed struct {
		A int `json:"a"`
	}
	type ext struct {
		A int `json:"a"`
	}

	_, err := MarshalFlat(typed{1}, ext{2})
	var fe *Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected Error, got %T: %v", err, err)
	}
	if fe.Kind != KeyCollision {
		t.Fatalf("expected KeyCollision, got %q", fe.Kind)
	}
}

func TestRaw_RejectsNonObject(t *testing.T) {
	_, err := Raw([]byte(`[1]`))
	var fe *Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected Error, got %T: %v", err, err)
	}
	if fe.Kind != SchemaViolation {
		t.Fatalf("expected SchemaViolation, got %q", fe.Kind)
	}
}

func TestWrapSchema(t *testing.T) {
	t.Run("passes through kinded errors", func(t *testing.T) {
		in := Errorf(KeyCollision, "a", "dup")
		if got := WrapSchema(in); got != error(in) {
			t.Fatalf("expected pass-through, got %v", got)
		}
	})

	t.Run("classifies type errors", func(t *testing.T) {
		var v struct {
			A int `json:"a"`
		}
		err := json.Unmarshal([]byte(`{"a": "nope"}`), &v)
		wrapped := WrapSchema(err)
		var fe *Error
		if !errors.As(wrapped, &fe) {
			t.Fatalf("expected Error, got %T: %v", wrapped, wrapped)
		}
		if fe.Kind != SchemaViolation {
			t.Fatalf("expected SchemaViolation, got %q", fe.Kind)
		}
		if fe.Path != "a" {
			t.Fatalf("expected path %q, got %q", "a", fe.Path)
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if WrapSchema(nil) != nil {
			t.Fatal("expected nil")
		}
	})
}

func TestError_Format(t *testing.T) {
	withPath := Errorf(UnknownEnumVariant, "op", "unknown operation %q", "frobnicate")
	if got := withPath.Error(); got != `op: unknown enum variant: unknown operation "frobnicate"` {
		t.Fatalf("unexpected message: %s", got)
	}

	withoutPath := Errorf(OneOrManyInvalid, "", "bad element")
	if got := withoutPath.Error(); got != "one-or-many invalid: bad element" {
		t.Fatalf("unexpected message: %s", got)
	}
}
