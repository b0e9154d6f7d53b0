package legal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	goupdate "github.com/doitdistributed/go-update"

	"github.com/oshokin/vault-ci-helper/internal/config"
	"github.com/oshokin/vault-ci-helper/internal/logger"
	"github.com/oshokin/vault-ci-helper/internal/repository/gitinfo"
)

const (
	// defaultDocumentServer hosts the canonical legal documents.
	defaultDocumentServer = "https://eula.hashicorp.com/"

	// licenseFilename is the license file at the repository root.
	licenseFilename = "LICENSE"

	// releaseDirName is the staging directory read by release tooling.
	releaseDirName = ".release"

	// licenseTargetName is the license copy's name inside releaseDirName.
	licenseTargetName = "LICENSE.txt"

	// defaultFileMode is used for staged documents.
	defaultFileMode os.FileMode = 0o644

	// defaultDirMode is used when creating staging directories.
	defaultDirMode os.FileMode = 0o755
)

// documentNames lists the legal documents shipped with enterprise artifacts.
var documentNames = []string{"EULA.txt", "TermsOfEvaluation.txt"}

var errBadHTTPStatus = errors.New("unexpected HTTP status")

// Options contains inputs for the legal staging entry point.
type Options struct {
	// ServerURL overrides the legal document server.
	ServerURL string
	// RepoRoot overrides the checkout root the documents are staged into.
	// When empty, the enclosing git checkout's root is used.
	RepoRoot string
}

// stager downloads legal documents and places them where packaging expects
// them. It is unexported—callers should use Run, which encapsulates setup.
type stager struct {
	// serverURL is the base URL documents are fetched from.
	serverURL string
	// repoRoot is the top-level directory of the checkout.
	repoRoot string
	// distDir receives the downloaded documents.
	distDir string
}

// Run executes the legal document staging workflow.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "prepare-legal")

	s, err := newStager(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize legal staging: %w", err)
	}

	if err = s.Run(ctx); err != nil {
		return fmt.Errorf("legal staging failed: %w", err)
	}

	logger.Info(ctx, "Legal documents staged successfully")

	return nil
}

// newStager resolves the staging locations.
func newStager(ctx context.Context, opts *Options) (*stager, error) {
	serverURL := opts.ServerURL
	if serverURL == "" {
		serverURL = defaultDocumentServer
	}

	repoRoot := opts.RepoRoot
	if repoRoot == "" {
		var err error

		repoRoot, err = gitinfo.NewRepository("").RootDir(ctx)
		if err != nil {
			return nil, fmt.Errorf("locate repository root: %w", err)
		}
	}

	return &stager{
		serverURL: serverURL,
		repoRoot:  repoRoot,
		distDir:   filepath.Join(repoRoot, config.DefaultDistDir),
	}, nil
}

// Run downloads every document into the dist directory and copies the
// repository license into the release staging directory.
func (s *stager) Run(ctx context.Context) error {
	if err := os.MkdirAll(s.distDir, defaultDirMode); err != nil {
		return fmt.Errorf("create dist directory: %w", err)
	}

	for _, name := range documentNames {
		if err := s.stageDocument(ctx, name); err != nil {
			return err
		}
	}

	return s.copyLicense(ctx)
}

// stageDocument downloads one document and applies it atomically, so a
// failed download never leaves a truncated file behind.
func (s *stager) stageDocument(ctx context.Context, name string) error {
	response, err := s.fetchDocument(ctx, name)
	if response != nil {
		defer func() {
			_ = response.Body.Close()
		}()
	}

	if err != nil {
		return err
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	target := filepath.Join(s.distDir, name)

	if _, err = os.Stat(target); errors.Is(err, os.ErrNotExist) {
		var placeholder *os.File

		placeholder, err = os.Create(target)
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}

		_ = placeholder.Close()
	}

	options := goupdate.Options{
		TargetPath: target,
		TargetMode: defaultFileMode,
	}

	if err = goupdate.Apply(bytes.NewReader(data), options); err != nil {
		return fmt.Errorf("stage %s: %w", name, err)
	}

	oldName := target + ".old"
	if _, err = os.Stat(oldName); err == nil {
		_ = os.Remove(oldName)
	}

	logger.InfoKV(ctx, "Staged legal document", "path", target)

	return nil
}

// fetchDocument requests one document from the legal document server.
func (s *stager) fetchDocument(ctx context.Context, name string) (*http.Response, error) {
	documentURL, err := url.Parse(s.serverURL)
	if err != nil {
		return nil, err
	}

	// Use path.Join to normalize duplicate slashes when composing the URL path.
	documentURL.Path = path.Join(documentURL.Path, name)
	finalURL := documentURL.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, finalURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return response, err
	}

	if response.StatusCode != http.StatusOK {
		return response, fmt.Errorf("%s, %s: %w", finalURL, response.Status, errBadHTTPStatus)
	}

	return response, nil
}

// copyLicense places a copy of the repository license where release tooling
// picks it up.
func (s *stager) copyLicense(ctx context.Context) error {
	contents, err := os.ReadFile(filepath.Join(s.repoRoot, licenseFilename))
	if err != nil {
		return fmt.Errorf("read license: %w", err)
	}

	releaseDir := filepath.Join(s.repoRoot, releaseDirName)
	if err = os.MkdirAll(releaseDir, defaultDirMode); err != nil {
		return fmt.Errorf("create release directory: %w", err)
	}

	target := filepath.Join(releaseDir, licenseTargetName)
	if err = os.WriteFile(target, contents, defaultFileMode); err != nil {
		return fmt.Errorf("write license copy: %w", err)
	}

	logger.InfoKV(ctx, "Copied license", "path", target)

	return nil
}
