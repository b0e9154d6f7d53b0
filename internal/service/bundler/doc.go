// Package bundler archives build artifacts into a release zip and writes a
// manifest of checksums for downstream release tooling.
package bundler
