package tools

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// reflectSchema projects a tool's argument struct into the JSON Schema
// object advertised to the model. Tools call it once at construction.
func reflectSchema(input any) json.RawMessage {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	s := reflector.Reflect(input)

	data, err := json.Marshal(s)
	if err != nil {
		return json.RawMessage(`{"type":"object","properties":{}}`)
	}
	return data
}
