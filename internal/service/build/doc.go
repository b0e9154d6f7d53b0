// Package build compiles the product binary: it stamps resolved release
// metadata into the binary through linker flags and drives the Go toolchain
// from the repository root.
package build
