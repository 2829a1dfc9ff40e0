package schema

import (
	"context"
	"encoding/json"
)

// Tool is the interface all model-callable tools must satisfy.
type Tool interface {
	Name() string
	Description() string
	// InputSchema returns the JSON Schema (as raw JSON bytes) describing
	// this tool's argument object.
	InputSchema() json.RawMessage
	// Execute runs the tool synchronously. A non-nil error is a fault; the
	// dispatcher, not the tool, decides how faults are reported to the model.
	Execute(ctx context.Context, input json.RawMessage) (string, error)
}

// ToolDescriptor is the advertised form of a tool, sent to the model with
// every request.
type ToolDescriptor struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

// Describe builds the descriptor for a tool.
func Describe(t Tool) ToolDescriptor {
	return ToolDescriptor{
		Name:        t.Name(),
		Description: t.Description(),
		InputSchema: t.InputSchema(),
	}
}
