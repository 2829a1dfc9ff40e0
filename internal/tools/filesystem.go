package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// decodeInput unmarshals a tool's raw argument JSON into its args struct.
// An absent or empty object leaves the struct zeroed.
func decodeInput(input json.RawMessage, v any) error {
	if len(input) == 0 {
		return nil
	}
	if err := json.Unmarshal(input, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// ReadFileTool
// ---------------------------------------------------------------------------

type readFileInput struct {
	Path string `json:"path" jsonschema:"description=Relative path to the file to read."`
}

// ReadFileTool returns the contents of a file.
type ReadFileTool struct {
	inputSchema json.RawMessage
}

func NewReadFileTool() *ReadFileTool {
	return &ReadFileTool{inputSchema: reflectSchema(readFileInput{})}
}

func (t *ReadFileTool) Name() string { return ToolReadFile }
func (t *ReadFileTool) Description() string {
	return "Read the contents of a file at the given relative path."
}
func (t *ReadFileTool) InputSchema() json.RawMessage { return t.inputSchema }

func (t *ReadFileTool) Execute(_ context.Context, input json.RawMessage) (string, error) {
	var args readFileInput
	if err := decodeInput(input, &args); err != nil {
		return "", err
	}
	if args.Path == "" {
		return "", errors.New("path is required")
	}
	info, err := os.Stat(args.Path)
	if err != nil {
		return "", fmt.Errorf("file not found: %s", args.Path)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("not a file: %s", args.Path)
	}
	data, err := os.ReadFile(args.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args.Path, err)
	}
	return string(data), nil
}

// ---------------------------------------------------------------------------
// ListFilesTool
// ---------------------------------------------------------------------------

type listFilesInput struct {
	Path string `json:"path,omitempty" jsonschema:"description=Directory to list. Defaults to the working directory."`
}

// ListFilesTool lists a directory's entries, one per line.
type ListFilesTool struct {
	inputSchema json.RawMessage
}

func NewListFilesTool() *ListFilesTool {
	return &ListFilesTool{inputSchema: reflectSchema(listFilesInput{})}
}

func (t *ListFilesTool) Name() string { return ToolListFiles }
func (t *ListFilesTool) Description() string {
	return "List the contents of a directory. Directories are marked [D], files [F]."
}
func (t *ListFilesTool) InputSchema() json.RawMessage { return t.inputSchema }

func (t *ListFilesTool) Execute(_ context.Context, input json.RawMessage) (string, error) {
	var args listFilesInput
	if err := decodeInput(input, &args); err != nil {
		return "", err
	}
	path := args.Path
	if path == "" {
		path = "."
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("directory not found: %s", path)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", path)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return "", fmt.Errorf("list %s: %w", path, err)
	}
	if len(entries) == 0 {
		return fmt.Sprintf("Directory %s is empty", path), nil
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		prefix := "[F] "
		if e.IsDir() {
			prefix = "[D] "
		}
		lines = append(lines, prefix+e.Name())
	}
	return strings.Join(lines, "\n"), nil
}

// ---------------------------------------------------------------------------
// EditFileTool
// ---------------------------------------------------------------------------

type editFileInput struct {
	Path    string `json:"path" jsonschema:"description=Relative path to the file to edit."`
	OldText string `json:"old_text" jsonschema:"description=Exact text to replace. Must occur exactly once. Empty to create a new file."`
	NewText string `json:"new_text" jsonschema:"description=Replacement text. For a new file this is the full contents."`
}

// EditFileTool replaces one occurrence of old_text with new_text. With an
// empty old_text and a path that does not exist yet, it creates the file.
type EditFileTool struct {
	inputSchema json.RawMessage
}

func NewEditFileTool() *EditFileTool {
	return &EditFileTool{inputSchema: reflectSchema(editFileInput{})}
}

func (t *EditFileTool) Name() string { return ToolEditFile }
func (t *EditFileTool) Description() string {
	return "Edit a file by replacing old_text with new_text. old_text must occur exactly once; an empty old_text with a new path creates the file."
}
func (t *EditFileTool) InputSchema() json.RawMessage { return t.inputSchema }

func (t *EditFileTool) Execute(_ context.Context, input json.RawMessage) (string, error) {
	var args editFileInput
	if err := decodeInput(input, &args); err != nil {
		return "", err
	}
	if args.Path == "" {
		return "", errors.New("path is required")
	}

	data, err := os.ReadFile(args.Path)
	if err != nil {
		if os.IsNotExist(err) && args.OldText == "" {
			return createFile(args.Path, args.NewText)
		}
		return "", fmt.Errorf("file not found: %s", args.Path)
	}
	content := string(data)

	if args.OldText == "" {
		return "", fmt.Errorf("%s already exists, old_text is required", args.Path)
	}
	count := strings.Count(content, args.OldText)
	if count == 0 {
		return "", fmt.Errorf("old_text not found in %s", args.Path)
	}
	if count > 1 {
		return "", fmt.Errorf("old_text appears %d times in %s, provide more context to make it unique", count, args.Path)
	}

	updated := strings.Replace(content, args.OldText, args.NewText, 1)
	if err := os.WriteFile(args.Path, []byte(updated), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", args.Path, err)
	}
	return fmt.Sprintf("Successfully edited %s", args.Path), nil
}

func createFile(path, content string) (string, error) {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	return fmt.Sprintf("Successfully created %s", path), nil
}
