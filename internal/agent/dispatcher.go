package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alduin/alduin/internal/schema"
	"github.com/alduin/alduin/internal/tools"
	"github.com/alduin/alduin/internal/ui"
)

// Dispatcher resolves and executes the model's tool requests. Every outcome
// comes back as a result block; dispatch itself never fails.
type Dispatcher struct {
	registry *tools.Registry
	console  *ui.Console
}

// NewDispatcher returns a Dispatcher over the given registry.
func NewDispatcher(registry *tools.Registry, console *ui.Console) *Dispatcher {
	return &Dispatcher{registry: registry, console: console}
}

// Dispatch executes one tool request synchronously. An unknown name
// short-circuits before execution with a single error report. A tool fault
// is caught and rendered as result text so the model can react to it.
func (d *Dispatcher) Dispatch(ctx context.Context, call schema.ToolUseBlock) schema.ToolResultBlock {
	tool, ok := d.registry.Lookup(call.Name)
	if !ok {
		msg := fmt.Sprintf("Error: Tool '%s' not found", call.Name)
		d.console.ToolError(msg)
		slog.Warn("unknown tool requested", "tool", call.Name)
		return schema.ToolResultBlock{ToolUseID: call.ID, Content: msg, IsError: true}
	}

	d.console.ToolRequest(call.Name, call.Input)
	output, err := tool.Execute(ctx, call.Input)
	if err != nil {
		msg := fmt.Sprintf("Error: %s: %v", call.Name, err)
		d.console.ToolError(msg)
		slog.Warn("tool failed", "tool", call.Name, "err", err)
		return schema.ToolResultBlock{ToolUseID: call.ID, Content: msg, IsError: true}
	}

	d.console.ToolResult(call.Name, output)
	slog.Info("tool executed", "tool", call.Name)
	return schema.ToolResultBlock{ToolUseID: call.ID, Content: output, IsError: false}
}
