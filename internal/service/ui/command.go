package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/oshokin/vault-ci-helper/internal/config"
	"github.com/oshokin/vault-ci-helper/internal/logger"
	"github.com/oshokin/vault-ci-helper/internal/repository/gitinfo"
)

// yarnExecutable is the name of the package manager binary resolved through PATH.
const yarnExecutable = "yarn"

// errMissingUISources indicates that the UI source tree is absent, so there
// is nothing to build.
var errMissingUISources = errors.New("UI sources not found")

// Options contains inputs for the UI build entry point.
type Options struct {
	// Dir overrides the UI sources location.
	// When empty, the ui directory under the repository root is used.
	Dir string
}

// Run executes the UI build workflow: dependency installation followed by
// the asset build, both from the UI directory.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "build-ui")

	dir := opts.Dir
	if dir == "" {
		repoRoot, err := gitinfo.NewRepository("").RootDir(ctx)
		if err != nil {
			return fmt.Errorf("locate repository root: %w", err)
		}

		dir = filepath.Join(repoRoot, config.DefaultUIDir)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("%s: %w", dir, errMissingUISources)
	}

	logger.InfoKV(ctx, "Installing UI dependencies", "dir", dir)

	if err := runYarn(ctx, dir, "install"); err != nil {
		return err
	}

	logger.Info(ctx, "Building UI assets")

	if err := runYarn(ctx, dir, "run", "build"); err != nil {
		return err
	}

	logger.Info(ctx, "UI build completed successfully")

	return nil
}

// runYarn executes one yarn command from the UI directory, streaming its
// output to the caller's terminal.
func runYarn(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, yarnExecutable, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("yarn %s: %w", strings.Join(args, " "), err)
	}

	return nil
}
