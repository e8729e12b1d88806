// Package commands implements the CLI commands for rtm.
package commands

import (
	"context"
	"io"

	tprogrock "github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/telemetry/progrock"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/app"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/build"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for rtm.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
// Logger and Recorder may be nil, in which case the global flags only affect the app.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rtm",
		Short:         "Resolve rustup toolchain manifests into package sets and downloads",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-progress", false, "Do not print progress lines to stderr")
	rootCmd.PersistentFlags().BoolP("refresh", "r", false, "Bypass the manifest cache")

	c := &CLI{
		components: components,
		rootCmd:    rootCmd,
	}
	rootCmd.PersistentPreRunE = c.applyGlobalFlags

	rootCmd.AddCommand(c.newPackagesCmd())
	rootCmd.AddCommand(c.newDownloadsCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newToolchainCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func (c *CLI) applyGlobalFlags(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("log-level")
	level, ok := domain.ParseLogLevel(name)
	if !ok {
		return zerr.With(domain.ErrUnknownLogLevel, "level", name)
	}
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	if c.components.Logger != nil {
		c.components.Logger.SetLevel(level)
	}
	if c.components.Recorder != nil {
		if lines, ok := c.components.Recorder.Writer().(*tprogrock.LineWriter); ok {
			lines.SetVerbose(level == domain.LogLevelDebug)
			if noProgress {
				lines.SetOutput(io.Discard)
			}
		}
	}
	return nil
}
