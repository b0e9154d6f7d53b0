package gitinfo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// gitExecutable is the name of the git binary resolved through PATH.
const gitExecutable = "git"

// Repository answers questions about the git checkout the helper runs in.
type Repository struct {
	// dir is the working directory for git processes.
	// An empty value inherits the caller's working directory.
	dir string
}

// NewRepository creates a repository running git commands from dir.
func NewRepository(dir string) *Repository {
	return &Repository{
		dir: dir,
	}
}

// Revision returns the full hash of the checkout's HEAD commit.
func (r *Repository) Revision(ctx context.Context) (string, error) {
	return r.run(ctx, "rev-parse", "HEAD")
}

// CommitTime returns the committer timestamp of HEAD in UTC.
func (r *Repository) CommitTime(ctx context.Context) (time.Time, error) {
	raw, err := r.run(ctx, "show", "-s", "--format=%ct", "HEAD")
	if err != nil {
		return time.Time{}, err
	}

	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse commit timestamp %q: %w", raw, err)
	}

	return time.Unix(seconds, 0).UTC(), nil
}

// RootDir returns the absolute path of the checkout's top-level directory.
func (r *Repository) RootDir(ctx context.Context) (string, error) {
	return r.run(ctx, "rev-parse", "--show-toplevel")
}

// run executes a git command and returns its trimmed standard output.
// Diagnostics git prints on stderr are folded into the returned error.
func (r *Repository) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, gitExecutable, args...)
	cmd.Dir = r.dir

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("git %s: %w: %s",
				strings.Join(args, " "), err, strings.TrimSpace(string(exitErr.Stderr)))
		}

		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return strings.TrimSpace(string(output)), nil
}
