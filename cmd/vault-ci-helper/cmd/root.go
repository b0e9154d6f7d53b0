package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/vault-ci-helper/internal/config"
	"github.com/oshokin/vault-ci-helper/internal/logger"
	"github.com/oshokin/vault-ci-helper/internal/version"
)

var (
	// logLevel is the minimum severity printed to stderr.
	logLevel string

	// cfg holds the helper's configuration, built once from the environment
	// before any subcommand runs.
	cfg *config.Config

	// rootCmd represents the base command dispatching release helper actions.
	rootCmd = &cobra.Command{
		Use:   "vault-ci-helper",
		Short: "Release version and build helper for CI pipelines",
		Long: `Release version and build helper for CI pipelines.

It resolves the release version from environment overrides and the version
source file, derives package versions, artifact names and linker flags, and
drives the build, UI build, bundling and legal document staging steps.`,
		Version:      version.Full(),
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("%q: %w", logLevel, errUnknownLogLevel)
			}

			logger.SetLevel(level)

			cfg = config.FromEnv()

			return nil
		},
	}
)

var errUnknownLogLevel = errors.New("unknown log level")

// Execute runs the vault-ci-helper CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps an execution error to the helper's exit status. A failed
// delegated external command propagates its own exit status, every other
// error maps to 1.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}

	return 1
}

// newSignalContext returns a context canceled on SIGTERM or SIGINT, so
// delegated subprocesses stop together with the helper.
func newSignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", logger.Level().String(), "minimum log level printed to stderr")

	// Subcommand tokens form a closed set, shell completion is not part of it.
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// The version subcommand belongs to the product being released, the
	// helper reports its own build metadata through the --version flag only.
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
}
