package commands

import (
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/app"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newPackagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List the packages to install on each host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}
			return c.components.App.Packages(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	addSourceFlags(cmd)
	addInstallFlags(cmd)
	return cmd
}

func (c *CLI) newDownloadsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "downloads",
		Short: "Print the artifacts to download for each host as a lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}
			return c.components.App.Downloads(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	addSourceFlags(cmd)
	addInstallFlags(cmd)
	return cmd
}

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the hosts, profiles and packages of a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := sourceOptions(cmd)
			if err != nil {
				return err
			}
			return c.components.App.Inspect(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	addSourceFlags(cmd)
	return cmd
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("manifest", "m", "", "Path or URL of a manifest document")
	cmd.Flags().String("toolchain", "", "Toolchain whose channel manifest to fetch, e.g. nightly-2022-11-30")
	cmd.Flags().String("spec", "", "Request file to read (default \""+domain.RequestFileName+"\")")
	cmd.Flags().StringP("format", "o", string(domain.FormatText), "Output format (text, yaml, json)")
}

func addInstallFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("host", nil, "Host triple to resolve for (repeatable)")
	cmd.Flags().StringP("profile", "p", "", "Profile to install (default \""+domain.DefaultProfile+"\")")
	cmd.Flags().StringSliceP("component", "c", nil, "Extra component to install (repeatable)")
	cmd.Flags().StringSliceP("target", "t", nil, "Extra standard library target (repeatable)")
}

func sourceOptions(cmd *cobra.Command) (app.Options, error) {
	format, err := formatFlag(cmd)
	if err != nil {
		return app.Options{}, err
	}
	manifest, _ := cmd.Flags().GetString("manifest")
	toolchain, _ := cmd.Flags().GetString("toolchain")
	spec, _ := cmd.Flags().GetString("spec")
	refresh, _ := cmd.Flags().GetBool("refresh")

	return app.Options{
		SpecFile: spec,
		Request:  domain.Request{Manifest: manifest, Toolchain: toolchain},
		Format:   format,
		Refresh:  refresh,
	}, nil
}

func resolveOptions(cmd *cobra.Command) (app.Options, error) {
	opts, err := sourceOptions(cmd)
	if err != nil {
		return app.Options{}, err
	}

	hostNames, _ := cmd.Flags().GetStringSlice("host")
	if opts.Request.Hosts, err = parseTriples(hostNames); err != nil {
		return app.Options{}, zerr.With(err, "flag", "host")
	}
	targetNames, _ := cmd.Flags().GetStringSlice("target")
	if opts.Request.Spec.Targets, err = parseTriples(targetNames); err != nil {
		return app.Options{}, zerr.With(err, "flag", "target")
	}
	opts.Request.Spec.Profile, _ = cmd.Flags().GetString("profile")
	opts.Request.Spec.Components, _ = cmd.Flags().GetStringSlice("component")
	return opts, nil
}

func formatFlag(cmd *cobra.Command) (domain.OutputFormat, error) {
	name, _ := cmd.Flags().GetString("format")
	return domain.ParseOutputFormat(name)
}

func parseTriples(names []string) ([]domain.Triple, error) {
	if len(names) == 0 {
		return nil, nil
	}
	triples := make([]domain.Triple, 0, len(names))
	for _, name := range names {
		t, err := domain.ParseTriple(name)
		if err != nil {
			return nil, err
		}
		triples = append(triples, t)
	}
	return triples, nil
}
