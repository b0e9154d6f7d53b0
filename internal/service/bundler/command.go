package bundler

import (
	"archive/zip"
	"context"
	"crypto"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/vault-ci-helper/internal/config"
	"github.com/oshokin/vault-ci-helper/internal/domain/release"
	"github.com/oshokin/vault-ci-helper/internal/logger"
	"github.com/oshokin/vault-ci-helper/internal/repository/gitinfo"

	// Ensure SHA512 available for checksum calculation.
	_ "crypto/sha512"
)

const (
	// manifestSuffix is appended to the bundle path to name its manifest.
	manifestSuffix = ".manifest.yaml"

	// defaultFileMode is used when writing the manifest.
	defaultFileMode os.FileMode = 0o644

	// defaultChecksumFunction is used to calculate bundled file hashes.
	defaultChecksumFunction crypto.Hash = crypto.SHA512

	// defaultMapCapacity is the default initial capacity for maps.
	defaultMapCapacity = 16
)

var (
	// errNothingToBundle indicates an empty dist directory, meaning no build
	// artifacts were produced before bundling.
	errNothingToBundle = errors.New("dist directory is empty, run the build first")

	errHashUnavailable = errors.New("hash function unavailable")
)

// Options contains inputs for the bundle entry point.
type Options struct {
	// Version is the resolved release version recorded in the manifest.
	Version release.VersionInfo
	// ArtifactBasename is the canonical artifact name recorded in the manifest.
	ArtifactBasename string
	// BundlePath is the destination of the zip archive.
	// When empty, the default bundle name under the repository root is used.
	BundlePath string
	// DistDir overrides the directory whose contents are archived.
	// When empty, the dist directory under the repository root is used.
	DistDir string
}

// Manifest describes a produced bundle for downstream release tooling.
type Manifest struct {
	// VersionNumber is the full release version of the bundled artifacts.
	VersionNumber string `yaml:"version"`
	// Artifact is the canonical artifact basename of this release.
	Artifact string `yaml:"artifact"`
	// Files maps archive entry names to their base64-encoded checksums.
	Files map[string]string `yaml:"files"`
}

// bundler archives build artifacts and describes them in a manifest.
// It is unexported—callers should use Run, which encapsulates setup.
type bundler struct {
	// distDir is the directory whose files are archived.
	distDir string
	// bundlePath is the destination zip archive.
	bundlePath string
	// manifest accumulates checksums while the archive is written.
	manifest *Manifest
}

// Run executes the bundling workflow.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "bundle")

	b, err := newBundler(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize bundling: %w", err)
	}

	if err = b.Run(ctx); err != nil {
		return fmt.Errorf("bundling failed: %w", err)
	}

	return nil
}

// newBundler resolves archive locations and prepares an empty manifest.
func newBundler(ctx context.Context, opts *Options) (*bundler, error) {
	distDir, bundlePath := opts.DistDir, opts.BundlePath

	if distDir == "" || bundlePath == "" {
		repoRoot, err := gitinfo.NewRepository("").RootDir(ctx)
		if err != nil {
			return nil, fmt.Errorf("locate repository root: %w", err)
		}

		if distDir == "" {
			distDir = filepath.Join(repoRoot, config.DefaultDistDir)
		}

		if bundlePath == "" {
			bundlePath = filepath.Join(repoRoot, config.DefaultBundleName)
		}
	}

	return &bundler{
		distDir:    distDir,
		bundlePath: bundlePath,
		manifest: &Manifest{
			VersionNumber: opts.Version.String(),
			Artifact:      opts.ArtifactBasename,
			Files:         make(map[string]string, defaultMapCapacity),
		},
	}, nil
}

// Run archives the dist directory, records checksums and writes the manifest
// next to the archive.
func (b *bundler) Run(ctx context.Context) error {
	files, err := b.collectFiles()
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Archiving build artifacts", "dist", b.distDir, "files", len(files))

	if err = b.writeArchive(files); err != nil {
		return err
	}

	if err = b.fillManifest(files); err != nil {
		return err
	}

	if err = b.saveManifest(); err != nil {
		return err
	}

	info, err := os.Stat(b.bundlePath)
	if err != nil {
		return fmt.Errorf("stat bundle: %w", err)
	}

	logger.InfoKV(ctx, "Bundle written",
		"path", b.bundlePath,
		"size", humanize.Bytes(uint64(info.Size())),
		"manifest", b.manifestPath())

	return nil
}

// collectFiles lists the dist directory's files relative to its root,
// in the deterministic lexical order the walk produces.
func (b *bundler) collectFiles() ([]string, error) {
	var files []string

	err := filepath.WalkDir(b.distDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(b.distDir, path)
		if err != nil {
			return err
		}

		files = append(files, rel)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list build artifacts: %w", err)
	}

	if len(files) == 0 {
		return nil, errNothingToBundle
	}

	return files, nil
}

// writeArchive produces the zip archive with entries named relative to the
// dist directory, so unpacking yields the artifacts directly.
func (b *bundler) writeArchive(files []string) error {
	out, err := os.Create(b.bundlePath)
	if err != nil {
		return fmt.Errorf("create bundle: %w", err)
	}

	archive := zip.NewWriter(out)

	for _, name := range files {
		if err = b.addFile(archive, name); err != nil {
			_ = out.Close()

			return err
		}
	}

	if err = archive.Close(); err != nil {
		_ = out.Close()

		return fmt.Errorf("finish bundle: %w", err)
	}

	if err = out.Close(); err != nil {
		return fmt.Errorf("close bundle: %w", err)
	}

	return nil
}

// addFile streams one artifact into the archive.
func (b *bundler) addFile(archive *zip.Writer, name string) error {
	path := filepath.Join(b.distDir, name)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", name, err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("describe %s: %w", name, err)
	}

	header.Name = filepath.ToSlash(name)
	header.Method = zip.Deflate

	entry, err := archive.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("add %s: %w", name, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}

	// Best-effort close; the file is read-only.
	defer func() {
		_ = f.Close()
	}()

	if _, err = io.Copy(entry, f); err != nil {
		return fmt.Errorf("archive %s: %w", name, err)
	}

	return nil
}

// fillManifest records each artifact's checksum under its archive entry name.
func (b *bundler) fillManifest(files []string) error {
	for _, name := range files {
		checksum, err := fileChecksum(filepath.Join(b.distDir, name))
		if err != nil {
			return err
		}

		b.manifest.Files[filepath.ToSlash(name)] = base64.StdEncoding.EncodeToString(checksum)
	}

	return nil
}

// saveManifest writes the manifest next to the bundle.
func (b *bundler) saveManifest() error {
	contents, err := yaml.Marshal(b.manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err = os.WriteFile(b.manifestPath(), contents, defaultFileMode); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// manifestPath returns the manifest location derived from the bundle path.
func (b *bundler) manifestPath() string {
	return b.bundlePath + manifestSuffix
}

// fileChecksum returns checksum bytes for a file using defaultChecksumFunction.
func fileChecksum(path string) ([]byte, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	if !defaultChecksumFunction.Available() {
		return nil, fmt.Errorf("checksum calculation not possible: %w", errHashUnavailable)
	}

	hasher := defaultChecksumFunction.New()
	if _, err = hasher.Write(contents); err != nil {
		return nil, fmt.Errorf("calculate checksum: %w", err)
	}

	return hasher.Sum(nil), nil
}
