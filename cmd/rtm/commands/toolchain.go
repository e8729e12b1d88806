package commands

import (
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newToolchainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toolchain NAME",
		Short: "Parse a toolchain name and print its manifest location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			return c.components.App.Toolchain(cmd.OutOrStdout(), args[0], format)
		},
	}
	cmd.Flags().StringP("format", "o", string(domain.FormatText), "Output format (text, yaml, json)")
	return cmd
}
