package release

import (
	"fmt"
	"strings"
)

// baseField returns the i-th dot-separated component of the base version.
// The split is deliberately permissive: a base with fewer components yields
// empty strings for the missing positions instead of an error.
func (v VersionInfo) baseField(i int) string {
	fields := strings.Split(v.Base, ".")
	if i >= len(fields) {
		return ""
	}

	return fields[i]
}

// Major returns the first component of the base version.
func (v VersionInfo) Major() string {
	return v.baseField(0)
}

// Minor returns the second component of the base version.
func (v VersionInfo) Minor() string {
	return v.baseField(1)
}

// Patch returns the third component of the base version.
func (v VersionInfo) Patch() string {
	return v.baseField(2)
}

// PackageVersion renders the composed version in package-manager form:
// every hyphen becomes a tilde so deb/rpm tooling sorts prerelease builds
// before the final release. The + metadata separator is left untouched.
//
//	1.15.0-rc1      -> 1.15.0~rc1
//	1.15.0-rc1+ent  -> 1.15.0~rc1+ent
func (v VersionInfo) PackageVersion() string {
	return strings.ReplaceAll(v.String(), "-", "~")
}

// ArtifactBasename derives the canonical artifact filename stem for a build:
// {package}_{version}_{os}_{arch}. Inputs are trusted environment values and
// are not escaped or validated.
func ArtifactBasename(packageName, targetOS, targetArch string, v VersionInfo) string {
	return fmt.Sprintf("%s_%s_%s_%s", packageName, v.String(), targetOS, targetArch)
}
