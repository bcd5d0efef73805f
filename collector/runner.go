package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Errors reported by Runner. Collectors treat all of them as a signal to
// fall back to the kernel interface for the category.
var (
	ErrToolMissing   = errors.New("tool not found in PATH")
	ErrTimeout       = errors.New("command timed out")
	ErrCommandFailed = errors.New("command failed")
)

// DefaultTimeout bounds a single external command invocation.
const DefaultTimeout = 3 * time.Second

// Runner executes external diagnostic binaries with a per-command
// timeout, capturing stdout. The PATH lookup is injectable so tests can
// simulate a system where a tool is absent.
type Runner struct {
	Timeout  time.Duration
	lookPath func(string) (string, error)
}

// NewRunner returns a Runner with the given timeout (DefaultTimeout
// when zero).
func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{Timeout: timeout, lookPath: exec.LookPath}
}

// Available reports whether the binary can be found on PATH.
func (r *Runner) Available(name string) bool {
	_, err := r.lookPath(name)
	return err == nil
}

// Path resolves the binary on PATH.
func (r *Runner) Path(name string) (string, error) {
	return r.lookPath(name)
}

// Run executes name with args and returns trimmed stdout. On a non-zero
// exit the captured output is still returned alongside the error, since
// tools like smartctl use exit bits for non-fatal conditions.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (string, error) {
	path, err := r.lookPath(name)
	if err != nil {
		slog.Debug("tool unavailable", "tool", name)
		return "", fmt.Errorf("%s: %w", name, ErrToolMissing)
	}

	cctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	out, err := exec.CommandContext(cctx, path, args...).Output()
	text := strings.TrimSpace(string(out))
	if cctx.Err() == context.DeadlineExceeded {
		slog.Debug("command timed out", "tool", name, "timeout", r.Timeout)
		return text, fmt.Errorf("%s: %w", name, ErrTimeout)
	}
	if err != nil {
		slog.Debug("command failed", "tool", name, "error", err)
		return text, fmt.Errorf("%s: %w: %v", name, ErrCommandFailed, err)
	}
	return text, nil
}
