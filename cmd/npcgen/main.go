// Package main provides the npcgen command-line tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

// appFactory builds the dependency graph for one command invocation.
type appFactory func(ConfigPath) (*App, func(), error)

type rootOptions struct {
	configPath string
	build      appFactory
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(initApp).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(build appFactory) *cobra.Command {
	opts := &rootOptions{build: build}

	root := &cobra.Command{
		Use:           "npcgen",
		Short:         "Deterministic, seed-driven NPC attribute generator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML configuration file (defaults and NPCGEN_* env when empty)")

	root.AddCommand(
		newGenerateCmd(opts),
		newClothingCmd(opts),
		newTemplatesCmd(),
		newListCmd(opts),
		newShowCmd(opts),
		newVersionCmd(),
	)
	return root
}

// withApp builds the App, runs fn and releases everything the App holds.
func (o *rootOptions) withApp(fn func(*App) error) error {
	app, cleanup, err := o.build(ConfigPath(o.configPath))
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(app)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the npcgen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "npcgen %s\n", version)
		},
	}
}
