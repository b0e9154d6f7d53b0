package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFromEnv_Defaults checks that a clean environment yields the documented defaults.
func TestFromEnv_Defaults(t *testing.T) {
	clearHelperEnv(t)

	cfg := FromEnv()

	require.Empty(t, cfg.VersionBase)
	require.Empty(t, cfg.VersionPrerelease)
	require.Empty(t, cfg.VersionMetadata)
	require.Equal(t, DefaultVersionFile, cfg.VersionFile)
	require.Equal(t, DefaultPackageName, cfg.PackageName)
	require.Empty(t, cfg.TargetOS)
	require.Empty(t, cfg.TargetArch)
	require.Empty(t, cfg.BuildTags)
	require.False(t, cfg.StripSymbols)
	require.Equal(t, DefaultDateFormat, cfg.DateFormat)
	require.Empty(t, cfg.BundlePath)
}

// TestFromEnv_Overrides checks that every documented variable lands in its field.
func TestFromEnv_Overrides(t *testing.T) {
	clearHelperEnv(t)

	t.Setenv(EnvVersionBase, "1.15.0")
	t.Setenv(EnvVersionPrerelease, "rc1")
	t.Setenv(EnvVersionMetadata, "ent")
	t.Setenv(EnvVersionFile, "sdk/version/version_base.go")
	t.Setenv(EnvPackageName, "vault-enterprise")
	t.Setenv(EnvTargetOS, "linux")
	t.Setenv(EnvTargetArch, "arm64")
	t.Setenv(EnvBuildTags, "ui fips")
	t.Setenv(EnvStripSymbols, "true")
	t.Setenv(EnvDateFormat, "2006-01-02")
	t.Setenv(EnvBundlePath, "/tmp/out.zip")

	cfg := FromEnv()

	require.Equal(t, "1.15.0", cfg.VersionBase)
	require.Equal(t, "rc1", cfg.VersionPrerelease)
	require.Equal(t, "ent", cfg.VersionMetadata)
	require.Equal(t, "sdk/version/version_base.go", cfg.VersionFile)
	require.Equal(t, "vault-enterprise", cfg.PackageName)
	require.Equal(t, "linux", cfg.TargetOS)
	require.Equal(t, "arm64", cfg.TargetArch)
	require.Equal(t, "ui fips", cfg.BuildTags)
	require.True(t, cfg.StripSymbols)
	require.Equal(t, "2006-01-02", cfg.DateFormat)
	require.Equal(t, "/tmp/out.zip", cfg.BundlePath)
}

// TestFromEnv_EmptyValuesFallBack ensures empty variables behave like unset ones.
func TestFromEnv_EmptyValuesFallBack(t *testing.T) {
	clearHelperEnv(t)

	t.Setenv(EnvVersionFile, "")
	t.Setenv(EnvPackageName, "")

	cfg := FromEnv()

	require.Equal(t, DefaultVersionFile, cfg.VersionFile)
	require.Equal(t, DefaultPackageName, cfg.PackageName)
}

// clearHelperEnv unsets every variable FromEnv reads so tests see a clean slate.
// t.Setenv with the empty string still registers cleanup to restore the caller's value.
func clearHelperEnv(t *testing.T) {
	t.Helper()

	for _, env := range []string{
		EnvVersionBase,
		EnvVersionPrerelease,
		EnvVersionMetadata,
		EnvVersionFile,
		EnvPackageName,
		EnvTargetOS,
		EnvTargetArch,
		EnvBuildTags,
		EnvStripSymbols,
		EnvDateFormat,
		EnvBundlePath,
	} {
		t.Setenv(env, "")
	}
}
