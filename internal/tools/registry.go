// Package tools provides the built-in tools and the registry the dispatcher
// resolves them from.
package tools

import (
	"github.com/alduin/alduin/internal/schema"
)

// Canonical names of the built-in tools.
const (
	ToolReadFile  = "read_file"
	ToolListFiles = "list_files"
	ToolEditFile  = "edit_file"
)

// Registry holds the fixed set of tools the agent may dispatch. It is
// immutable once built; construct one with RegistryBuilder during startup.
type Registry struct {
	byName  map[string]schema.Tool
	ordered []schema.Tool
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (schema.Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Descriptors returns the advertised tool list in registration order. The
// slice is rebuilt per call so callers cannot reach registry internals.
func (r *Registry) Descriptors() []schema.ToolDescriptor {
	out := make([]schema.ToolDescriptor, len(r.ordered))
	for i, t := range r.ordered {
		out[i] = schema.Describe(t)
	}
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.ordered) }
