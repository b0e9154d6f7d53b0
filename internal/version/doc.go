// Package version exposes build metadata for the helper binary itself.
//
// Variables Version, Commit, and BuildTime are injected at build time via
// Go ldflags and default to sensible values for local builds. This is the
// same -X mechanism the helper assembles for the product it builds; the
// metadata here describes vault-ci-helper, not the product. Helper functions
// Short and Full render the version string for the --version flag and logs.
package version
