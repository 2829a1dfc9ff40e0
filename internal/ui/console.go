// Package ui renders every user-facing line the agent prints. All output
// flows through a Console so tests can capture it with a buffer.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/alduin/alduin/internal/schema"
)

const (
	ansiReset  = "\033[0m"
	ansiDim    = "\033[2m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"

	// Moves the cursor up one line and erases it. Used to replace the raw
	// input line with the styled echo.
	clearPrevLine = "\033[1A\033[2K"
)

// Display truncation only; the conversation always keeps full payloads.
const noticeLimit = 200

// Console writes alduin's terminal output.
type Console struct {
	out io.Writer
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{out: w}
}

// Prompt prints the input prompt without a trailing newline.
func (c *Console) Prompt() {
	fmt.Fprint(c.out, "🧑‍💻 You: ")
}

// UserMessage replaces the raw input line with the styled echo.
func (c *Console) UserMessage(text string) {
	fmt.Fprintf(c.out, "%s🧑‍💻 %sYou%s: %s\n", clearPrevLine, ansiBold, ansiReset, text)
}

// Assistant renders one text block of a model reply with the usage counters
// of the call that produced it.
func (c *Console) Assistant(text string, usage schema.TokenUsage) {
	if text == "" {
		return
	}
	fmt.Fprintf(c.out, "\n🐉 %sAlduin%s: %s\n", ansiCyan+ansiBold, ansiReset, text)
	fmt.Fprintf(c.out, "%s   tokens: in=%d out=%d%s\n\n", ansiDim, usage.InputTokens, usage.OutputTokens, ansiReset)
}

// ToolRequest announces a tool invocation before it runs.
func (c *Console) ToolRequest(name string, input json.RawMessage) {
	fmt.Fprintf(c.out, "%s🔧 %s(%s)%s\n", ansiYellow, name, Truncate(compactJSON(input), noticeLimit), ansiReset)
}

// ToolResult reports a successful tool outcome.
func (c *Console) ToolResult(name, output string) {
	fmt.Fprintf(c.out, "%s   ↳ %s%s\n", ansiDim, Truncate(output, noticeLimit), ansiReset)
}

// ToolError reports a failed or unknown tool dispatch.
func (c *Console) ToolError(msg string) {
	fmt.Fprintf(c.out, "%s❌ %s%s\n", ansiRed, msg, ansiReset)
}

// Consulting prints the status line shown while a model call is in flight.
func (c *Console) Consulting() {
	fmt.Fprintf(c.out, "%s📜 Consulting the Elder Scrolls...%s\n", ansiDim, ansiReset)
}

// Debug prints a dim diagnostic line.
func (c *Console) Debug(msg string) {
	fmt.Fprintf(c.out, "%s[debug] %s%s\n", ansiDim, msg, ansiReset)
}

// Error prints a user-facing error line.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.out, "%s❌ %s%s\n", ansiRed, msg, ansiReset)
}

// Goodbye clears the abandoned prompt line and prints the farewell.
func (c *Console) Goodbye() {
	fmt.Fprintf(c.out, "%s\n👋 Goodbye!\n", clearPrevLine)
}

// Truncate shortens s to at most n bytes, appending an ellipsis when cut.
// The cut backs off to a rune boundary so the notice stays valid UTF-8.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// compactJSON renders raw JSON on one line for display.
func compactJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return string(raw)
	}
	return string(out)
}
