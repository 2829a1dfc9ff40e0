// Package agent drives the interactive loop: read one line of input, call
// the model, dispatch requested tools, and repeat until the model answers
// with plain text.
package agent

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alduin/alduin/internal/schema"
	"github.com/alduin/alduin/internal/tools"
	"github.com/alduin/alduin/internal/ui"
)

// One line of input may be a large paste; lift bufio's 64KB default.
const maxInputBytes = 1 << 20

// Agent owns one conversation against one gateway. It is strictly
// synchronous: one model call or tool execution in flight at any time.
type Agent struct {
	gateway    schema.Gateway
	dispatcher *Dispatcher
	registry   *tools.Registry
	console    *ui.Console
	system     string
	scanner    *bufio.Scanner
}

// NewAgent wires the loop's collaborators. Input is read from in, one line
// per user turn.
func NewAgent(gateway schema.Gateway, dispatcher *Dispatcher, registry *tools.Registry, console *ui.Console, in io.Reader) *Agent {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxInputBytes)
	return &Agent{
		gateway:    gateway,
		dispatcher: dispatcher,
		registry:   registry,
		console:    console,
		system:     BuildSystemPrompt(),
		scanner:    scanner,
	}
}

// Run blocks on the prompt until end of input or a fatal gateway error.
// Whitespace-only lines are ignored without touching the conversation.
func (a *Agent) Run(ctx context.Context) error {
	conversation := schema.NewConversation()

	for {
		a.console.Prompt()
		if !a.scanner.Scan() {
			a.console.Goodbye()
			return a.scanner.Err()
		}
		input := strings.TrimSpace(a.scanner.Text())
		if input == "" {
			continue
		}

		conversation.AddUserText(input)
		a.console.UserMessage(input)

		if err := a.completeTurn(ctx, conversation); err != nil {
			return err
		}
	}
}

// completeTurn drives model rounds until a reply carries no tool requests.
// There is no round cap: the model decides when it is done, and no tool-use
// block is ever left undispatched.
func (a *Agent) completeTurn(ctx context.Context, conversation *schema.Conversation) error {
	for {
		reply, err := a.gateway.SendMessage(ctx, a.system, conversation, a.registry.Descriptors())
		if err != nil {
			return err
		}
		conversation.AddAssistant(reply.Blocks)

		for _, block := range reply.Blocks {
			if text, ok := block.(schema.TextBlock); ok {
				a.console.Assistant(text.Text, reply.Usage)
			}
		}

		calls := reply.ToolUses()
		if len(calls) == 0 {
			return nil
		}
		slog.Info("dispatching tools", "count", len(calls))

		results := make([]schema.ToolResultBlock, 0, len(calls))
		for _, call := range calls {
			results = append(results, a.dispatcher.Dispatch(ctx, call))
		}
		conversation.AddToolResults(results)
	}
}
