package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/vault-ci-helper/internal/domain/release"
	"github.com/oshokin/vault-ci-helper/internal/repository/toolchain"
)

// targetPlatform returns the build target platform, preferring explicit
// overrides over toolchain defaults.
func targetPlatform(ctx context.Context) toolchain.Platform {
	platform := toolchain.Platform{OS: cfg.TargetOS, Arch: cfg.TargetArch}
	if platform.OS != "" && platform.Arch != "" {
		return platform
	}

	defaults := toolchain.NewDetector().Platform(ctx)

	if platform.OS == "" {
		platform.OS = defaults.OS
	}

	if platform.Arch == "" {
		platform.Arch = defaults.Arch
	}

	return platform
}

var artifactBasenameCmd = &cobra.Command{
	Use:   "artifact-basename",
	Short: "Print the canonical basename of the release artifact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := newSignalContext()
		defer stop()

		info, err := resolveVersion(ctx)
		if err != nil {
			return err
		}

		platform := targetPlatform(ctx)
		basename := release.ArtifactBasename(cfg.PackageName, platform.OS, platform.Arch, info)

		_, err = fmt.Fprintln(cmd.OutOrStdout(), basename)

		return err
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(artifactBasenameCmd)
}
