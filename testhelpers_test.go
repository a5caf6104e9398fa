package wot

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sifis-home/wot-go/flatjson"
)

func mustUnmarshalJSON[T any](t *testing.T, b []byte, v *T) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}

func mustMarshalJSON(t *testing.T, v any) []byte {
	t.Helper()
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return out
}

func mustUnmarshalToMap(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	return m
}

// assertObject compares got against want up to key order.
func assertObject(t *testing.T, got []byte, want map[string]any) {
	t.Helper()
	if diff := cmp.Diff(want, mustUnmarshalToMap(t, got)); diff != "" {
		t.Fatalf("object mismatch (-want +got):\n%s", diff)
	}
}

func wantKind(t *testing.T, err error, kind flatjson.Kind) {
	t.Helper()
	var fe *flatjson.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected flatjson.Error, got %T: %v", err, err)
	}
	if fe.Kind != kind {
		t.Fatalf("expected kind %q, got %q: %v", kind, fe.Kind, fe)
	}
}
