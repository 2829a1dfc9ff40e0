package schema

import "context"

// TokenUsage mirrors the usage counters returned with every model reply.
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
}

// AssistantReply is the normalised model response: content blocks in the
// order the model produced them, plus the usage counters for the call.
type AssistantReply struct {
	Blocks []Block
	Usage  TokenUsage
}

// ToolUses returns the tool-use blocks of the reply in response order.
func (r *AssistantReply) ToolUses() []ToolUseBlock {
	var calls []ToolUseBlock
	for _, b := range r.Blocks {
		if tu, ok := b.(ToolUseBlock); ok {
			calls = append(calls, tu)
		}
	}
	return calls
}

// Gateway is the interface to the hosted model API. One call is one
// blocking messages exchange; implementations do not retry.
type Gateway interface {
	SendMessage(ctx context.Context, system string, conv *Conversation, tools []ToolDescriptor) (*AssistantReply, error)
}
