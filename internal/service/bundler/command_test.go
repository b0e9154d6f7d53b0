package bundler

import (
	"archive/zip"
	"context"
	"crypto/sha512"
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/vault-ci-helper/internal/domain/release"
)

func TestRun_ArchivesArtifacts(t *testing.T) {
	t.Parallel()

	distDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(distDir, "vault"), []byte("binary-bytes"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(distDir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(distDir, "docs", "notes.txt"), []byte("notes"), 0o644))

	bundlePath := filepath.Join(t.TempDir(), "vault.zip")

	err := Run(context.Background(), &Options{
		Version:          release.VersionInfo{Base: "1.15.0", Metadata: "ent"},
		ArtifactBasename: "vault_1.15.0+ent_linux_amd64",
		BundlePath:       bundlePath,
		DistDir:          distDir,
	})
	require.NoError(t, err)

	archive, err := zip.OpenReader(bundlePath)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, archive.Close())
	}()

	entries := make(map[string]string, len(archive.File))

	for _, file := range archive.File {
		reader, openErr := file.Open()
		require.NoError(t, openErr)

		contents, readErr := io.ReadAll(reader)
		require.NoError(t, readErr)
		require.NoError(t, reader.Close())

		entries[file.Name] = string(contents)
	}

	require.Equal(t, map[string]string{
		"vault":          "binary-bytes",
		"docs/notes.txt": "notes",
	}, entries)

	rawManifest, err := os.ReadFile(bundlePath + manifestSuffix)
	require.NoError(t, err)

	var manifest Manifest
	require.NoError(t, yaml.Unmarshal(rawManifest, &manifest))

	binaryChecksum := sha512.Sum512([]byte("binary-bytes"))
	notesChecksum := sha512.Sum512([]byte("notes"))

	require.Equal(t, Manifest{
		VersionNumber: "1.15.0+ent",
		Artifact:      "vault_1.15.0+ent_linux_amd64",
		Files: map[string]string{
			"vault":          base64.StdEncoding.EncodeToString(binaryChecksum[:]),
			"docs/notes.txt": base64.StdEncoding.EncodeToString(notesChecksum[:]),
		},
	}, manifest)
}

func TestRun_EmptyDist(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{
		Version:    release.VersionInfo{Base: "1.15.0"},
		BundlePath: filepath.Join(t.TempDir(), "vault.zip"),
		DistDir:    t.TempDir(),
	})
	require.ErrorIs(t, err, errNothingToBundle)
}

func TestRun_MissingDist(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{
		Version:    release.VersionInfo{Base: "1.15.0"},
		BundlePath: filepath.Join(t.TempDir(), "vault.zip"),
		DistDir:    filepath.Join(t.TempDir(), "absent"),
	})
	require.ErrorIs(t, err, os.ErrNotExist)
}
