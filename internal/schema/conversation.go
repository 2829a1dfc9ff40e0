package schema

// Turn is one entry in the conversation history.
type Turn struct {
	Role   Role
	Blocks []Block
}

// Conversation is the ordered history exchanged with the model. It owns
// typed append methods so callers never construct raw turns; turns are only
// ever appended, never removed or rewritten.
type Conversation struct {
	turns []Turn
}

// NewConversation returns an empty Conversation ready for use.
func NewConversation() *Conversation {
	return &Conversation{turns: make([]Turn, 0)}
}

// AddUserText appends a user turn carrying a single text block.
func (c *Conversation) AddUserText(text string) {
	c.turns = append(c.turns, Turn{
		Role:   RoleUser,
		Blocks: []Block{TextBlock{Text: text}},
	})
}

// AddAssistant appends an assistant turn with the model's blocks verbatim.
func (c *Conversation) AddAssistant(blocks []Block) {
	c.turns = append(c.turns, Turn{
		Role:   RoleAssistant,
		Blocks: blocks,
	})
}

// AddToolResults appends one user turn carrying every result of a dispatch
// round. The wire protocol requires all results for an assistant turn to
// travel together, in request order.
func (c *Conversation) AddToolResults(results []ToolResultBlock) {
	blocks := make([]Block, len(results))
	for i, r := range results {
		blocks[i] = r
	}
	c.turns = append(c.turns, Turn{
		Role:   RoleUser,
		Blocks: blocks,
	})
}

// Turns returns the history in order. Callers must not mutate it.
func (c *Conversation) Turns() []Turn { return c.turns }

// Len returns the number of turns accumulated so far.
func (c *Conversation) Len() int { return len(c.turns) }
