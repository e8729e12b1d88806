// Package main is the entry point for the rtm toolchain manifest resolver.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/FrancisRussell/rustup-toolchain-manifest/cmd/rtm/commands"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/app"
	_ "github.com/FrancisRussell/rustup-toolchain-manifest/internal/wiring"
	"github.com/grindlemire/graft"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.Components)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// Apply options
	for _, opt := range opts {
		opt(components)
	}

	// 2. Interface - CLI
	cli := commands.New(components)

	// 3. Execution
	err = cli.Execute(ctx)
	_ = components.Recorder.Close()
	if err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
