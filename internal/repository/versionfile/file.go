package versionfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oshokin/vault-ci-helper/internal/domain/release"
)

// Declaration identifiers recognized in the source file.
const (
	baseIdentifier       = "Version"
	prereleaseIdentifier = "VersionPrerelease"
	metadataIdentifier   = "VersionMetadata"
)

// Repository reads the product's version declarations from its source file.
type Repository struct {
	// path is the filesystem location of the version source file.
	path string
}

// NewRepository creates a repository reading declarations from the provided path.
func NewRepository(path string) *Repository {
	return &Repository{
		path: filepath.Clean(path),
	}
}

// Load scans the source file for the three recognized declarations.
// A missing file is not an error: it yields zero values, mirroring the
// per-field fallback contract where absent declarations resolve to empty.
// Any other read failure is reported.
func (r *Repository) Load(_ context.Context) (release.SourceValues, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return release.SourceValues{}, nil
		}

		return release.SourceValues{}, fmt.Errorf("open version file: %w", err)
	}

	// Best-effort close; the file is read-only.
	defer func() {
		_ = f.Close()
	}()

	values, err := scan(f)
	if err != nil {
		return release.SourceValues{}, fmt.Errorf("read version file: %w", err)
	}

	return values, nil
}

// scan extracts declarations from lines of the exact three-token shape
//
//	Identifier = "Value"
//
// The first token names the field, the second must be an equals sign, and the
// third carries the value with every quote character stripped. Lines of any
// other shape are ignored, so the scanner tolerates full Go source files.
func scan(r io.Reader) (release.SourceValues, error) {
	var values release.SourceValues

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 || fields[1] != "=" {
			continue
		}

		value := strings.ReplaceAll(fields[2], `"`, "")

		switch fields[0] {
		case baseIdentifier:
			values.Base = value
		case prereleaseIdentifier:
			values.Prerelease = value
		case metadataIdentifier:
			values.Metadata = value
		}
	}

	if err := scanner.Err(); err != nil {
		return release.SourceValues{}, err
	}

	return values, nil
}
