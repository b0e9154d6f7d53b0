// Package versionfile reads release version declarations from the product's
// version source file.
package versionfile
