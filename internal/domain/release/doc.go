// Package release contains the core version-resolution domain logic.
//
// It defines VersionInfo (the resolved base/prerelease/metadata triple),
// the override-then-fallback Resolve precedence, semantic version
// composition, package-manager formatting, and artifact basename derivation.
// Everything here is pure string logic: reading the source file and querying
// the toolchain live in the repository packages.
package release
