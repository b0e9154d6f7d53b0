package build

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/vault-ci-helper/internal/domain/release"
)

func TestBuildInfo_Ldflags(t *testing.T) {
	t.Parallel()

	info := BuildInfo{
		Version: release.VersionInfo{
			Base:       "1.15.0",
			Prerelease: "rc1",
			Metadata:   "ent",
		},
		Revision:  "0123abc",
		BuildDate: "2023-05-06T07:08:09Z",
	}

	require.Equal(t,
		"-X github.com/hashicorp/vault/version.Version=1.15.0 "+
			"-X github.com/hashicorp/vault/version.GitCommit=0123abc "+
			"-X github.com/hashicorp/vault/version.BuildDate=2023-05-06T07:08:09Z "+
			"-X github.com/hashicorp/vault/version.VersionPrerelease=rc1 "+
			"-X github.com/hashicorp/vault/version.VersionMetadata=ent",
		info.Ldflags())
}

func TestBuildInfo_LdflagsStripPrefix(t *testing.T) {
	t.Parallel()

	info := BuildInfo{
		Version:      release.VersionInfo{Base: "1.15.0"},
		Revision:     "0123abc",
		BuildDate:    "2023-05-06T07:08:09Z",
		StripSymbols: true,
	}

	flags := info.Ldflags()
	require.True(t, strings.HasPrefix(flags, "-s -w -X "), flags)
	require.NotContains(t, flags, "VersionPrerelease")
	require.NotContains(t, flags, "VersionMetadata")
}

func TestBuildInfo_StatusLine(t *testing.T) {
	t.Parallel()

	info := BuildInfo{
		Version: release.VersionInfo{
			Base:       "1.15.0",
			Prerelease: "rc1",
		},
		Revision:  "0123abc",
		BuildDate: "2023-05-06T07:08:09Z",
	}

	require.Equal(t,
		"Build version: 1.15.0, revision: 0123abc, build date: 2023-05-06T07:08:09Z, prerelease: rc1",
		info.StatusLine())
}

// Optional clauses of the flag string and the status line must always agree:
// a field reported in one and missing from the other would make the log lie
// about what was stamped into the binary.
func TestBuildInfo_ClauseConsistency(t *testing.T) {
	t.Parallel()

	prereleases := []string{"", "rc1"}
	metadatas := []string{"", "ent"}

	for _, prerelease := range prereleases {
		for _, metadata := range metadatas {
			info := BuildInfo{
				Version: release.VersionInfo{
					Base:       "1.15.0",
					Prerelease: prerelease,
					Metadata:   metadata,
				},
				Revision:  "0123abc",
				BuildDate: "2023-05-06T07:08:09Z",
			}

			flags, status := info.Ldflags(), info.StatusLine()

			require.Equal(t,
				strings.Contains(flags, "VersionPrerelease="),
				strings.Contains(status, "prerelease:"),
				"prerelease clause mismatch for %q", prerelease)
			require.Equal(t,
				strings.Contains(flags, "VersionMetadata="),
				strings.Contains(status, "metadata:"),
				"metadata clause mismatch for %q", metadata)
		}
	}
}

func TestBuilder_OutputPath(t *testing.T) {
	t.Parallel()

	linux := &builder{opts: &Options{PackageName: "vault", TargetOS: "linux"}}
	require.Equal(t, filepath.Join("dist", "vault"), linux.outputPath())

	windows := &builder{opts: &Options{PackageName: "vault", TargetOS: "windows"}}
	require.Equal(t, filepath.Join("dist", "vault.exe"), windows.outputPath())
}
