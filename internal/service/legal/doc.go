// Package legal stages the legal documents accompanying enterprise release
// artifacts: downloaded terms and the repository license.
package legal
