package tools

import (
	"github.com/alduin/alduin/internal/schema"
)

// RegistryBuilder collects tools during startup. Build produces the
// immutable Registry the dispatcher resolves against; registration order is
// kept because the descriptor list advertised to the model preserves it.
type RegistryBuilder struct {
	byName map[string]schema.Tool
	order  []string
}

// NewRegistryBuilder returns an empty builder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{byName: make(map[string]schema.Tool)}
}

// WithTool adds a tool and returns the builder, enabling chaining.
// Registering the same name twice keeps the later tool at the position of
// the first registration; the earlier tool is silently shadowed.
func (b *RegistryBuilder) WithTool(t schema.Tool) *RegistryBuilder {
	name := t.Name()
	if _, exists := b.byName[name]; !exists {
		b.order = append(b.order, name)
	}
	b.byName[name] = t

	return b
}

// Build freezes the accumulated tools into a Registry.
func (b *RegistryBuilder) Build() *Registry {
	byName := make(map[string]schema.Tool, len(b.byName))
	ordered := make([]schema.Tool, 0, len(b.order))
	for _, name := range b.order {
		t := b.byName[name]
		byName[name] = t
		ordered = append(ordered, t)
	}
	return &Registry{byName: byName, ordered: ordered}
}
