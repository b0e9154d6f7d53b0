// Package toolchain discovers defaults from the installed Go toolchain.
package toolchain
