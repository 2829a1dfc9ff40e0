package tools

import (
	"encoding/json"
	"testing"
)

type projected struct {
	Type                 string                     `json:"type"`
	Properties           map[string]json.RawMessage `json:"properties"`
	Required             []string                   `json:"required"`
	AdditionalProperties bool                       `json:"additionalProperties"`
}

func decodeSchema(t *testing.T, raw json.RawMessage) projected {
	t.Helper()
	var p projected
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("unmarshal projected schema: %v", err)
	}
	return p
}

func TestReflectSchema_RequiredFields(t *testing.T) {
	p := decodeSchema(t, reflectSchema(readFileInput{}))

	if p.Type != "object" {
		t.Errorf("expected object schema, got %q", p.Type)
	}
	if _, ok := p.Properties["path"]; !ok {
		t.Error("expected a path property")
	}
	if len(p.Required) != 1 || p.Required[0] != "path" {
		t.Errorf("expected required=[path], got %v", p.Required)
	}
	if p.AdditionalProperties {
		t.Error("expected additionalProperties to be false")
	}
}

func TestReflectSchema_OmitemptyIsOptional(t *testing.T) {
	p := decodeSchema(t, reflectSchema(listFilesInput{}))

	for _, r := range p.Required {
		if r == "path" {
			t.Error("omitempty field must not be required")
		}
	}
	if _, ok := p.Properties["path"]; !ok {
		t.Error("expected a path property")
	}
}

func TestReflectSchema_FieldDescriptions(t *testing.T) {
	p := decodeSchema(t, reflectSchema(editFileInput{}))

	var pathProp struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(p.Properties["old_text"], &pathProp); err != nil {
		t.Fatalf("unmarshal old_text property: %v", err)
	}
	if pathProp.Description == "" {
		t.Error("expected description from the jsonschema tag")
	}
}
