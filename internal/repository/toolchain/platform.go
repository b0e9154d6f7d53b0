package toolchain

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
)

// goExecutable is the name of the Go toolchain binary resolved through PATH.
const goExecutable = "go"

// Platform describes the compilation target of a build.
type Platform struct {
	// OS is the target operating system, in GOOS notation.
	OS string
	// Arch is the target processor architecture, in GOARCH notation.
	Arch string
}

// Detector discovers the toolchain's default target platform.
type Detector struct {
	executable string
}

// NewDetector creates a detector consulting the go binary from PATH.
func NewDetector() *Detector {
	return &Detector{
		executable: goExecutable,
	}
}

// Platform returns the default target platform. It asks the toolchain so that
// persistent "go env -w" configuration is honored, and falls back to this
// process's runtime values when the toolchain cannot be consulted.
func (d *Detector) Platform(ctx context.Context) Platform {
	return Platform{
		OS:   d.detect(ctx, "GOOS", runtime.GOOS),
		Arch: d.detect(ctx, "GOARCH", runtime.GOARCH),
	}
}

func (d *Detector) detect(ctx context.Context, name, fallback string) string {
	output, err := exec.CommandContext(ctx, d.executable, "env", name).Output()
	if err != nil {
		return fallback
	}

	value := strings.TrimSpace(string(output))
	if value == "" {
		return fallback
	}

	return value
}
