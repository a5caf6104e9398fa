package wot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sifis-home/wot-go/flatjson"
)

// Decode reads a JSON or YAML document into v. JSON input is decoded
// directly; YAML input is bridged through a JSON re-encode so the
// flattening contract and every custom unmarshaler apply identically to
// both syntaxes.
func Decode(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return flatjson.Errorf(flatjson.SchemaViolation, "", "empty document")
	}
	if json.Valid(data) {
		return json.Unmarshal(data, v)
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("wot: document is neither valid JSON nor valid YAML: %w", err)
	}
	bridged, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("wot: yaml document is not representable as JSON: %w", err)
	}
	return json.Unmarshal(bridged, v)
}
