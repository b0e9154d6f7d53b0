// Package gitinfo extracts build metadata from the surrounding git checkout:
// the HEAD revision, its committer timestamp and the repository root.
package gitinfo
