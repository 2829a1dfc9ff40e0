// Package dependency wires alduin's collaborators using go.uber.org/dig.
package dependency

import (
	"os"

	"go.uber.org/dig"

	"github.com/alduin/alduin/internal/agent"
	"github.com/alduin/alduin/internal/config"
	"github.com/alduin/alduin/internal/providers"
	"github.com/alduin/alduin/internal/schema"
	"github.com/alduin/alduin/internal/tools"
	"github.com/alduin/alduin/internal/ui"
)

// Container holds the resolved singletons. Callers use the typed getter
// methods; they never need to import dig directly.
type Container struct {
	console *ui.Console
	agent   *agent.Agent
}

func (c *Container) Console() *ui.Console { return c.console }
func (c *Container) Agent() *agent.Agent  { return c.agent }

// New builds and wires everything from cfg. Construction happens exactly
// once at startup; the registry and gateway never change afterwards.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(newConsole); err != nil {
		return nil, err
	}
	if err := d.Provide(newGateway); err != nil {
		return nil, err
	}
	if err := d.Provide(newRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(agent.NewDispatcher); err != nil {
		return nil, err
	}
	if err := d.Provide(newAgent); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(console *ui.Console, ag *agent.Agent) {
		result = &Container{console: console, agent: ag}
	})
	return result, err
}

func newConsole() *ui.Console {
	return ui.NewConsole(os.Stdout)
}

func newGateway(cfg *config.Config, console *ui.Console) schema.Gateway {
	return providers.NewAnthropicClient(cfg.APIKey, console)
}

func newRegistry() *tools.Registry {
	return tools.NewRegistryBuilder().
		WithTool(tools.NewReadFileTool()).
		WithTool(tools.NewListFilesTool()).
		WithTool(tools.NewEditFileTool()).
		Build()
}

func newAgent(gateway schema.Gateway, dispatcher *agent.Dispatcher, registry *tools.Registry, console *ui.Console) *agent.Agent {
	return agent.NewAgent(gateway, dispatcher, registry, console, os.Stdin)
}
