package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/oshokin/vault-ci-helper/internal/config"
	"github.com/oshokin/vault-ci-helper/internal/domain/release"
	"github.com/oshokin/vault-ci-helper/internal/logger"
	"github.com/oshokin/vault-ci-helper/internal/repository/gitinfo"
)

const (
	// goExecutable is the name of the Go toolchain binary resolved through PATH.
	goExecutable = "go"

	// defaultDirMode is used when creating output directories.
	defaultDirMode os.FileMode = 0o755
)

// Options contains inputs for the build entry point.
type Options struct {
	// Version is the fully resolved release version stamped into the binary.
	Version release.VersionInfo
	// PackageName is the product name; it doubles as the output binary name.
	PackageName string
	// TargetOS is the GOOS value the binary is compiled for.
	TargetOS string
	// TargetArch is the GOARCH value the binary is compiled for.
	TargetArch string
	// Tags is the build tag list handed to the toolchain, empty for none.
	Tags string
	// StripSymbols removes symbol and DWARF tables from the binary.
	StripSymbols bool
	// DateFormat is the layout used to render the build date.
	DateFormat string
}

// builder compiles the product binary from the enclosing checkout.
// It is unexported—callers should use Run, which encapsulates setup and validation.
type builder struct {
	// opts holds the validated build inputs.
	opts *Options
	// repoRoot is the top-level directory of the checkout, every toolchain
	// process runs from here instead of changing the working directory.
	repoRoot string
	// info is the metadata stamped into the binary.
	info BuildInfo
}

// errEmptyBaseVersion indicates that version resolution produced no base
// version, which would stamp an unusable binary.
var errEmptyBaseVersion = errors.New("base version is empty, set it via override or the version source file")

// Run executes the build workflow.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "build")

	b, err := newBuilder(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize build: %w", err)
	}

	if err = b.Run(ctx); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	logger.Info(ctx, "Build completed successfully")

	return nil
}

// newBuilder collects commit metadata and validates the resolved version.
func newBuilder(ctx context.Context, opts *Options) (*builder, error) {
	if opts.Version.Base == "" {
		return nil, errEmptyBaseVersion
	}

	repo := gitinfo.NewRepository("")

	repoRoot, err := repo.RootDir(ctx)
	if err != nil {
		return nil, fmt.Errorf("locate repository root: %w", err)
	}

	revision, err := repo.Revision(ctx)
	if err != nil {
		return nil, fmt.Errorf("read HEAD revision: %w", err)
	}

	commitTime, err := repo.CommitTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("read commit timestamp: %w", err)
	}

	return &builder{
		opts:     opts,
		repoRoot: repoRoot,
		info: BuildInfo{
			Version:      opts.Version,
			Revision:     revision,
			BuildDate:    commitTime.Format(opts.DateFormat),
			StripSymbols: opts.StripSymbols,
		},
	}, nil
}

// Run generates sources and compiles the binary into the dist directory.
func (b *builder) Run(ctx context.Context) error {
	logger.Info(ctx, b.info.StatusLine())
	warnIfToolchainBusy(ctx)

	if err := b.runToolchain(ctx, "generate", "./..."); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(b.repoRoot, config.DefaultDistDir), defaultDirMode); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	output := b.outputPath()

	logger.InfoKV(ctx, "Compiling product binary",
		"output", output,
		"target_os", b.opts.TargetOS,
		"target_arch", b.opts.TargetArch)

	args := []string{"build"}
	if b.opts.Tags != "" {
		args = append(args, "-tags", b.opts.Tags)
	}

	args = append(args, "-ldflags", b.info.Ldflags(), "-o", output)

	return b.runToolchain(ctx, args...)
}

// outputPath returns the binary location relative to the repository root.
func (b *builder) outputPath() string {
	name := b.opts.PackageName
	if b.opts.TargetOS == "windows" {
		name += ".exe"
	}

	return filepath.Join(config.DefaultDistDir, name)
}

// runToolchain executes one go command from the repository root with the
// target platform exported, streaming its output to the caller's terminal.
func (b *builder) runToolchain(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, goExecutable, args...)
	cmd.Dir = b.repoRoot
	cmd.Env = append(os.Environ(),
		"GOOS="+b.opts.TargetOS,
		"GOARCH="+b.opts.TargetArch,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go %s: %w", strings.Join(args, " "), err)
	}

	return nil
}
