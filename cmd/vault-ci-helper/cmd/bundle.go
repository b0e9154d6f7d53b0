package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/vault-ci-helper/internal/domain/release"
	"github.com/oshokin/vault-ci-helper/internal/service/bundler"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Archive build artifacts into the release bundle",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := newSignalContext()
		defer stop()

		info, err := resolveVersion(ctx)
		if err != nil {
			return err
		}

		platform := targetPlatform(ctx)

		options := &bundler.Options{
			Version:          info,
			ArtifactBasename: release.ArtifactBasename(cfg.PackageName, platform.OS, platform.Arch, info),
			BundlePath:       cfg.BundlePath,
		}

		return bundler.Run(ctx, options)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(bundleCmd)
}
