package build

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/vault-ci-helper/internal/logger"
)

// toolchainProcessName returns the Go toolchain's executable name on the
// platform the helper itself runs on.
func toolchainProcessName() string {
	if strings.Contains(strings.ToLower(runtime.GOOS), "windows") {
		return goExecutable + ".exe"
	}

	return goExecutable
}

// warnIfToolchainBusy reports other running Go toolchain processes.
// Parallel builds sharing one checkout can contend for the output directory,
// but CI pipelines also run toolchain processes in parallel on purpose, so
// the guard never blocks or terminates anything.
func warnIfToolchainBusy(ctx context.Context) {
	processList, err := ps.Processes()
	if err != nil {
		logger.Debugf(ctx, "Unable to inspect the process table: %v", err)
		return
	}

	thisProcessID := os.Getpid()
	processName := toolchainProcessName()

	var running int

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() != processName {
			continue
		}

		running++
	}

	if running > 0 {
		logger.WarnKV(ctx, "Other Go toolchain processes are running, they may contend for the output directory",
			"count", running)
	}
}
