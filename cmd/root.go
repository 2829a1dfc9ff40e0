// Package cmd implements the alduin CLI using cobra.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alduin/alduin/internal/config"
	"github.com/alduin/alduin/internal/dependency"
	"github.com/alduin/alduin/internal/providers"
	"github.com/alduin/alduin/internal/ui"
)

const version = "0.1.0"

// rootCmd is the only command: it runs the interactive session.
var rootCmd = &cobra.Command{
	Use:   "alduin",
	Short: "🐉 Alduin - a minimal CLI coding agent",
	Long:  "🐉 Alduin relays your words to the model and runs its tool requests against the local filesystem.",
	RunE:  runAgent,
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
}

func runAgent(cmd *cobra.Command, _ []string) error {
	console := ui.NewConsole(cmd.OutOrStdout())
	console.Banner(providers.Model)

	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			console.Error("ANTHROPIC_API_KEY environment variable is not set.")
			return nil
		}
		return err
	}

	container, err := dependency.New(cfg)
	if err != nil {
		return err
	}

	listenForSignals(console)

	return container.Agent().Run(context.Background())
}

// listenForSignals prints the farewell and exits on SIGINT or SIGTERM.
// Nothing in flight is cancelled; the process simply ends.
func listenForSignals(console *ui.Console) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		console.Goodbye()
		os.Exit(0)
	}()
}
