package config

import (
	"github.com/spf13/viper"
)

// Config carries every external override the helper honors, resolved once at
// process start. Components receive it explicitly and never read the process
// environment themselves.
type Config struct {
	// VersionBase overrides the major.minor.patch base version from the source file.
	VersionBase string
	// VersionPrerelease overrides the prerelease label (e.g. "rc1").
	VersionPrerelease string
	// VersionMetadata overrides the metadata/edition label. The value "oss" is
	// a sentinel meaning "not set" and falls back to the source file.
	VersionMetadata string
	// VersionFile is the version source file path, relative to the repository root.
	VersionFile string
	// PackageName is the product name used for artifact basenames and the built binary.
	PackageName string
	// TargetOS is the build target operating system; empty means ask the toolchain.
	TargetOS string
	// TargetArch is the build target architecture; empty means ask the toolchain.
	TargetArch string
	// BuildTags is the build tag list passed verbatim to go build -tags.
	BuildTags string
	// StripSymbols requests the -s -w linker flags. Accepts the usual boolean spellings.
	StripSymbols bool
	// DateFormat is the Go time layout used to render the HEAD commit date.
	DateFormat string
	// BundlePath is where the release zip is written; empty means
	// DefaultBundleName under the repository root, resolved when bundling.
	BundlePath string
}

const (
	// DefaultPackageName is the product name used when no override is set.
	DefaultPackageName = "vault"

	// DefaultVersionFile is where the product declares its version fields.
	DefaultVersionFile = "version/version_base.go"

	// DefaultDateFormat renders commit dates as UTC ISO-8601 with a Z suffix.
	DefaultDateFormat = "2006-01-02T15:04:05Z"

	// DefaultBundleName is the zip filename used when no bundle path is set.
	DefaultBundleName = "vault.zip"

	// DefaultDistDir is the build output directory under the repository root.
	DefaultDistDir = "dist"

	// DefaultUIDir is the front-end source directory under the repository root.
	DefaultUIDir = "ui"
)

// Environment variable names recognized by FromEnv.
// Every variable is optional; unset and empty both fall back to the default.
const (
	EnvVersionBase       = "VAULT_VERSION"
	EnvVersionPrerelease = "VAULT_PRERELEASE"
	EnvVersionMetadata   = "VAULT_METADATA"
	EnvVersionFile       = "VAULT_VERSION_FILE"
	EnvPackageName       = "VAULT_PKG_NAME"
	EnvTargetOS          = "GOOS"
	EnvTargetArch        = "GOARCH"
	EnvBuildTags         = "BUILD_TAGS"
	EnvStripSymbols      = "VAULT_STRIP_SYMBOLS"
	EnvDateFormat        = "VAULT_BUILD_DATE_FORMAT"
	EnvBundlePath        = "VAULT_BUNDLE_PATH"
)

// FromEnv builds the configuration from the process environment.
// Every override has a named field and a documented default; nothing else in
// the program reads environment variables.
func FromEnv() *Config {
	v := viper.New()

	bindings := map[string]string{
		"version_base":       EnvVersionBase,
		"version_prerelease": EnvVersionPrerelease,
		"version_metadata":   EnvVersionMetadata,
		"version_file":       EnvVersionFile,
		"package_name":       EnvPackageName,
		"target_os":          EnvTargetOS,
		"target_arch":        EnvTargetArch,
		"build_tags":         EnvBuildTags,
		"strip_symbols":      EnvStripSymbols,
		"date_format":        EnvDateFormat,
		"bundle_path":        EnvBundlePath,
	}
	for key, env := range bindings {
		//nolint:errcheck // BindEnv only fails on an empty key, which is impossible here.
		v.BindEnv(key, env)
	}

	v.SetDefault("version_file", DefaultVersionFile)
	v.SetDefault("package_name", DefaultPackageName)
	v.SetDefault("date_format", DefaultDateFormat)

	return &Config{
		VersionBase:       v.GetString("version_base"),
		VersionPrerelease: v.GetString("version_prerelease"),
		VersionMetadata:   v.GetString("version_metadata"),
		VersionFile:       v.GetString("version_file"),
		PackageName:       v.GetString("package_name"),
		TargetOS:          v.GetString("target_os"),
		TargetArch:        v.GetString("target_arch"),
		BuildTags:         v.GetString("build_tags"),
		StripSymbols:      v.GetBool("strip_symbols"),
		DateFormat:        v.GetString("date_format"),
		BundlePath:        v.GetString("bundle_path"),
	}
}
