// Package ui builds the product's web UI assets with the JavaScript toolchain.
package ui
