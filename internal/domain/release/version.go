package release

import "strings"

// MetadataOSS is the sentinel edition label meaning "no explicit metadata".
// CI pipelines export it for default open-source builds, so an override equal
// to it behaves exactly like an unset override and falls back to the source file.
const MetadataOSS = "oss"

// VersionInfo holds the three resolved version fields of a release.
// It is computed once per invocation and read-only afterwards.
type VersionInfo struct {
	// Base is the major.minor.patch core of the release identifier.
	Base string
	// Prerelease is the optional label of a non-final build; empty means absent.
	Prerelease string
	// Metadata is the optional provenance/edition label; empty means absent.
	Metadata string
}

// SourceValues holds the raw fields parsed from the version source file.
// A zero value represents a missing or empty source file.
type SourceValues struct {
	// Base is the value of the Version declaration.
	Base string
	// Prerelease is the value of the VersionPrerelease declaration.
	Prerelease string
	// Metadata is the value of the VersionMetadata declaration.
	Metadata string
}

// Overrides holds the externally supplied version fields.
// Empty fields defer to the source file values.
type Overrides struct {
	// Base overrides the major.minor.patch base version.
	Base string
	// Prerelease overrides the prerelease label.
	Prerelease string
	// Metadata overrides the edition label; MetadataOSS counts as unset.
	Metadata string
}

// Complete reports whether every field is overridden, meaning resolution
// would never consult the source file. A MetadataOSS override does not count,
// since it defers to the file.
func (o Overrides) Complete() bool {
	return o.Base != "" && o.Prerelease != "" &&
		o.Metadata != "" && o.Metadata != MetadataOSS
}

// Resolve applies the override-then-fallback precedence to each field
// independently: a non-empty override wins verbatim, except that a metadata
// override equal to MetadataOSS is treated as unset. Fields with neither an
// override nor a source value resolve to empty, never to an error.
func Resolve(o Overrides, src SourceValues) VersionInfo {
	info := VersionInfo{
		Base:       o.Base,
		Prerelease: o.Prerelease,
		Metadata:   o.Metadata,
	}

	if info.Base == "" {
		info.Base = src.Base
	}

	if info.Prerelease == "" {
		info.Prerelease = src.Prerelease
	}

	if info.Metadata == "" || info.Metadata == MetadataOSS {
		info.Metadata = src.Metadata
	}

	return info
}

// String composes the full version identifier from the resolved fields:
//
//	base                        1.15.0
//	base-prerelease             1.15.0-rc1
//	base+metadata               1.15.0+ent
//	base-prerelease+metadata    1.15.0-rc1+ent
//
// An empty base yields a malformed identifier; callers that persist the
// result must reject it first (see the build service).
func (v VersionInfo) String() string {
	var b strings.Builder

	b.WriteString(v.Base)

	if v.Prerelease != "" {
		b.WriteString("-")
		b.WriteString(v.Prerelease)
	}

	if v.Metadata != "" {
		b.WriteString("+")
		b.WriteString(v.Metadata)
	}

	return b.String()
}
