// Package schema contains the core contracts shared across alduin packages:
// the conversation model and the tool and gateway interfaces. Concrete
// implementations live in their respective packages.
package schema

import "encoding/json"

// Role identifies which party authored a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Block is one content block inside a turn. Exactly three types implement
// it: TextBlock, ToolUseBlock and ToolResultBlock. The unexported marker
// keeps the set closed so consumers can type-switch over all variants.
type Block interface {
	isBlock()
}

// TextBlock is plain prose, written by either party.
type TextBlock struct {
	Text string
}

// ToolUseBlock is the model asking for one tool invocation.
type ToolUseBlock struct {
	ID    string          // correlates the eventual result
	Name  string          // registry name of the requested tool
	Input json.RawMessage // raw argument object as sent by the model
}

// ToolResultBlock carries one tool outcome back to the model.
type ToolResultBlock struct {
	ToolUseID string // ID of the ToolUseBlock this answers
	Content   string
	IsError   bool
}

func (TextBlock) isBlock()       {}
func (ToolUseBlock) isBlock()    {}
func (ToolResultBlock) isBlock() {}
