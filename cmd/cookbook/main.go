// Package main is the entry point for the cookbook service.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/cookbook/cmd/cookbook/commands"
	"go.trai.ch/cookbook/internal/adapters/config"
	"go.trai.ch/cookbook/internal/app"
	_ "go.trai.ch/cookbook/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, provideComponents))
}

// provideComponents builds the graph. The cleanup flushes telemetry and closes the store.
func provideComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, nil, err
	}
	return c, func() {
		if err := c.Close(context.WithoutCancel(ctx)); err != nil {
			c.Logger.Error(err)
		}
	}, nil
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The settings node reads COOKBOOK_CONFIG, so the flag has to be applied first.
	if path := configFlag(args); path != "" {
		if err := os.Setenv(config.EnvConfigPath, path); err != nil {
			_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
			return 1
		}
	}

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Settings, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}

// configFlag returns the value of --config or -c in args, or "".
func configFlag(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--":
			return ""
		case arg == "--"+commands.ConfigFlag || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--"+commands.ConfigFlag+"="):
			return strings.TrimPrefix(arg, "--"+commands.ConfigFlag+"=")
		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c=")
		}
	}
	return ""
}
