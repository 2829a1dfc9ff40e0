// Package providers implements the gateway to the hosted model API. All SDK
// wire types stay inside this package; the rest of the program speaks
// schema blocks.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/alduin/alduin/internal/schema"
	"github.com/alduin/alduin/internal/ui"
)

// Model and output token cap are fixed; alduin exposes no tuning surface.
const (
	Model     = "claude-sonnet-4-5"
	MaxTokens = 8096
)

// AnthropicClient implements schema.Gateway on the official Anthropic SDK.
// One SendMessage is one blocking Messages call; retries are disabled so a
// transport failure surfaces immediately.
type AnthropicClient struct {
	api     anthropic.Client
	console *ui.Console
}

// NewAnthropicClient builds a client for the given key. Extra request
// options are forwarded to the SDK; tests use them to point at a stub server.
func NewAnthropicClient(apiKey string, console *ui.Console, opts ...option.RequestOption) *AnthropicClient {
	base := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	return &AnthropicClient{
		api:     anthropic.NewClient(append(base, opts...)...),
		console: console,
	}
}

// SendMessage sends the whole conversation with the system prompt and tool
// list, then normalises the reply into schema blocks in response order.
func (c *AnthropicClient) SendMessage(ctx context.Context, system string, conv *schema.Conversation, tools []schema.ToolDescriptor) (*schema.AssistantReply, error) {
	c.console.Debug(fmt.Sprintf("Calling %s with %d messages", Model, conv.Len()))
	c.console.Consulting()
	slog.Debug("model call", "model", Model, "turns", conv.Len(), "tools", len(tools))

	message, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(Model),
		MaxTokens: MaxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages:  buildMessageParams(conv),
		Tools:     buildToolParams(tools),
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic messages call: %w", err)
	}

	return &schema.AssistantReply{
		Blocks: convertBlocks(message),
		Usage: schema.TokenUsage{
			InputTokens:  message.Usage.InputTokens,
			OutputTokens: message.Usage.OutputTokens,
		},
	}, nil
}

// buildMessageParams rebuilds the SDK wire form of the conversation. Tool
// results always ride user-role turns, tool uses assistant-role turns, so
// the mapping is purely per block.
func buildMessageParams(conv *schema.Conversation) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, conv.Len())
	for _, turn := range conv.Turns() {
		content := make([]anthropic.ContentBlockParamUnion, 0, len(turn.Blocks))
		for _, b := range turn.Blocks {
			switch blk := b.(type) {
			case schema.TextBlock:
				content = append(content, anthropic.NewTextBlock(blk.Text))
			case schema.ToolUseBlock:
				content = append(content, anthropic.ContentBlockParamUnion{
					OfToolUse: &anthropic.ToolUseBlockParam{
						ID:    blk.ID,
						Name:  blk.Name,
						Input: blk.Input,
					},
				})
			case schema.ToolResultBlock:
				content = append(content, anthropic.NewToolResultBlock(blk.ToolUseID, blk.Content, blk.IsError))
			}
		}
		role := anthropic.MessageParamRoleUser
		if turn.Role == schema.RoleAssistant {
			role = anthropic.MessageParamRoleAssistant
		}
		out = append(out, anthropic.MessageParam{Role: role, Content: content})
	}
	return out
}

// projectedSchema is the slice of a JSON Schema object the wire format
// carries: the properties bag rides verbatim under input_schema.
type projectedSchema struct {
	Properties json.RawMessage `json:"properties"`
}

// buildToolParams converts registry descriptors into the SDK tool list.
func buildToolParams(tools []schema.ToolDescriptor) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, td := range tools {
		var ps projectedSchema
		if err := json.Unmarshal(td.InputSchema, &ps); err != nil {
			slog.Warn("tool schema is not an object schema", "tool", td.Name, "err", err)
		}
		out = append(out, anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        td.Name,
				Description: anthropic.String(td.Description),
				InputSchema: anthropic.ToolInputSchemaParam{Properties: ps.Properties},
			},
		})
	}
	return out
}

// convertBlocks maps SDK content blocks onto schema blocks, preserving
// response order. Unsupported block kinds are logged and skipped.
func convertBlocks(message *anthropic.Message) []schema.Block {
	blocks := make([]schema.Block, 0, len(message.Content))
	for _, block := range message.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			blocks = append(blocks, schema.TextBlock{Text: v.Text})
		case anthropic.ToolUseBlock:
			blocks = append(blocks, schema.ToolUseBlock{
				ID:    v.ID,
				Name:  v.Name,
				Input: json.RawMessage(v.Input),
			})
		default:
			slog.Warn("ignoring unsupported content block", "type", fmt.Sprintf("%T", v))
		}
	}
	return blocks
}
