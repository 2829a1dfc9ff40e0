package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/alduin/alduin/internal/schema"
	"github.com/alduin/alduin/internal/tools"
	"github.com/alduin/alduin/internal/ui"
)

func newTestDispatcher(toolset ...schema.Tool) (*Dispatcher, *bytes.Buffer) {
	builder := tools.NewRegistryBuilder()
	for _, t := range toolset {
		builder.WithTool(t)
	}
	var buf bytes.Buffer
	return NewDispatcher(builder.Build(), ui.NewConsole(&buf)), &buf
}

func TestDispatcher_Dispatch_Success(t *testing.T) {
	spy := &spyTool{name: "read_file", output: "file contents"}
	d, buf := newTestDispatcher(spy)

	result := d.Dispatch(context.Background(), schema.ToolUseBlock{
		ID:    "tu_9",
		Name:  "read_file",
		Input: json.RawMessage(`{"path":"a.txt"}`),
	})

	if result.ToolUseID != "tu_9" {
		t.Errorf("result must carry the request id, got %q", result.ToolUseID)
	}
	if result.IsError || result.Content != "file contents" {
		t.Errorf("unexpected result: %+v", result)
	}
	out := buf.String()
	if strings.Count(out, "🔧") != 1 {
		t.Errorf("expected exactly one request notice, got %q", out)
	}
	if strings.Count(out, "↳") != 1 {
		t.Errorf("expected exactly one outcome notice, got %q", out)
	}
}

func TestDispatcher_Dispatch_PassesRawArguments(t *testing.T) {
	spy := &spyTool{name: "edit_file", output: "ok"}
	d, _ := newTestDispatcher(spy)

	input := json.RawMessage(`{"path":"x.go","old_text":"a","new_text":"b"}`)
	d.Dispatch(context.Background(), schema.ToolUseBlock{ID: "tu_1", Name: "edit_file", Input: input})

	if string(spy.lastArgs) != string(input) {
		t.Errorf("arguments must pass through untouched, got %s", spy.lastArgs)
	}
}

func TestDispatcher_Dispatch_UnknownTool_NeverExecutes(t *testing.T) {
	bystander := &spyTool{name: "read_file"}
	d, buf := newTestDispatcher(bystander)

	result := d.Dispatch(context.Background(), schema.ToolUseBlock{
		ID:    "tu_2",
		Name:  "delete_everything",
		Input: json.RawMessage(`{}`),
	})

	if !result.IsError {
		t.Error("unknown tool must produce an error result")
	}
	if !strings.HasPrefix(result.Content, "Error:") {
		t.Errorf("unknown-tool text must start with Error:, got %q", result.Content)
	}
	if result.Content != "Error: Tool 'delete_everything' not found" {
		t.Errorf("unexpected unknown-tool text: %q", result.Content)
	}
	if bystander.executed != 0 {
		t.Errorf("no tool body may run for an unknown name, got %d executions", bystander.executed)
	}
	out := buf.String()
	if strings.Count(out, "❌") != 1 {
		t.Errorf("expected exactly one error notice, got %q", out)
	}
	if strings.Contains(out, "🔧") {
		t.Errorf("unknown tool must not announce a request: %q", out)
	}
}

func TestDispatcher_Dispatch_FaultIsContained(t *testing.T) {
	failing := &spyTool{name: "read_file", err: errors.New("permission denied")}
	d, buf := newTestDispatcher(failing)

	result := d.Dispatch(context.Background(), schema.ToolUseBlock{
		ID:    "tu_3",
		Name:  "read_file",
		Input: json.RawMessage(`{"path":"/etc/shadow"}`),
	})

	if !result.IsError {
		t.Error("fault must produce an error result")
	}
	if !strings.Contains(result.Content, "read_file") || !strings.Contains(result.Content, "permission denied") {
		t.Errorf("fault text must name the tool and the fault, got %q", result.Content)
	}
	out := buf.String()
	if strings.Count(out, "🔧") != 1 || strings.Count(out, "❌") != 1 {
		t.Errorf("expected one request and one error notice, got %q", out)
	}
}
