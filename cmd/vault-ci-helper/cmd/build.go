package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/vault-ci-helper/internal/service/build"
	"github.com/oshokin/vault-ci-helper/internal/service/ui"
)

var (
	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Compile the product binary with stamped release metadata",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := newSignalContext()
			defer stop()

			info, err := resolveVersion(ctx)
			if err != nil {
				return err
			}

			platform := targetPlatform(ctx)

			options := &build.Options{
				Version:      info,
				PackageName:  cfg.PackageName,
				TargetOS:     platform.OS,
				TargetArch:   platform.Arch,
				Tags:         cfg.BuildTags,
				StripSymbols: cfg.StripSymbols,
				DateFormat:   cfg.DateFormat,
			}

			return build.Run(ctx, options)
		},
	}

	buildUICmd = &cobra.Command{
		Use:   "build-ui",
		Short: "Build the web UI assets",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := newSignalContext()
			defer stop()

			return ui.Run(ctx, &ui.Options{})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(buildCmd, buildUICmd)
}
