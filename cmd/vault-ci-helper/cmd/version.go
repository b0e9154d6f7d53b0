package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oshokin/vault-ci-helper/internal/domain/release"
	"github.com/oshokin/vault-ci-helper/internal/logger"
	"github.com/oshokin/vault-ci-helper/internal/repository/gitinfo"
	"github.com/oshokin/vault-ci-helper/internal/repository/versionfile"
)

// resolveVersion produces the effective release version: explicit overrides
// win per field, the version source file covers the rest. The file is not
// read at all when every field is overridden.
func resolveVersion(ctx context.Context) (release.VersionInfo, error) {
	overrides := release.Overrides{
		Base:       cfg.VersionBase,
		Prerelease: cfg.VersionPrerelease,
		Metadata:   cfg.VersionMetadata,
	}

	if overrides.Complete() {
		return release.Resolve(overrides, release.SourceValues{}), nil
	}

	values, err := loadSourceValues(ctx)
	if err != nil {
		return release.VersionInfo{}, err
	}

	return release.Resolve(overrides, values), nil
}

// loadSourceValues reads the version source file. A relative path is
// resolved against the repository root when a checkout encloses the process,
// and against the working directory otherwise.
func loadSourceValues(ctx context.Context) (release.SourceValues, error) {
	path := cfg.VersionFile
	if !filepath.IsAbs(path) {
		repoRoot, err := gitinfo.NewRepository("").RootDir(ctx)
		if err == nil {
			path = filepath.Join(repoRoot, path)
		} else {
			logger.Debugf(ctx, "Resolving the version file against the working directory: %v", err)
		}
	}

	return versionfile.NewRepository(path).Load(ctx)
}

// printVersionField resolves the release version and prints one projection
// of it on the command's output stream.
func printVersionField(cmd *cobra.Command, project func(release.VersionInfo) string) error {
	ctx, stop := newSignalContext()
	defer stop()

	info, err := resolveVersion(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), project(info))

	return err
}

var (
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the fully composed release version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersionField(cmd, release.VersionInfo.String)
		},
	}

	versionBaseCmd = &cobra.Command{
		Use:   "version-base",
		Short: "Print the base release version without prerelease or metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersionField(cmd, func(v release.VersionInfo) string { return v.Base })
		},
	}

	versionPreCmd = &cobra.Command{
		Use:   "version-pre",
		Short: "Print the prerelease label of the release version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersionField(cmd, func(v release.VersionInfo) string { return v.Prerelease })
		},
	}

	versionMetaCmd = &cobra.Command{
		Use:   "version-meta",
		Short: "Print the metadata label of the release version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersionField(cmd, func(v release.VersionInfo) string { return v.Metadata })
		},
	}

	versionMajorCmd = &cobra.Command{
		Use:   "version-major",
		Short: "Print the major component of the base version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersionField(cmd, release.VersionInfo.Major)
		},
	}

	versionMinorCmd = &cobra.Command{
		Use:   "version-minor",
		Short: "Print the minor component of the base version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersionField(cmd, release.VersionInfo.Minor)
		},
	}

	versionPatchCmd = &cobra.Command{
		Use:   "version-patch",
		Short: "Print the patch component of the base version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersionField(cmd, release.VersionInfo.Patch)
		},
	}

	versionPackageCmd = &cobra.Command{
		Use:   "version-package",
		Short: "Print the release version in package manager notation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersionField(cmd, release.VersionInfo.PackageVersion)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(
		versionCmd,
		versionBaseCmd,
		versionPreCmd,
		versionMetaCmd,
		versionMajorCmd,
		versionMinorCmd,
		versionPatchCmd,
		versionPackageCmd,
	)
}
