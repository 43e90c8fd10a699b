package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/doeshing/foundryup-init/internal/domain"
	"github.com/doeshing/foundryup-init/internal/pkg/filesystem"
	"github.com/doeshing/foundryup-init/internal/ports"
)

// ErrNotFound is returned when a program is not on the searched PATH.
var ErrNotFound = domain.ErrExecutableNotFound

// LocalExecutor runs programs attached to the given stdio.
type LocalExecutor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger ports.Logger
}

// NewLocalExecutor builds an executor; nil streams default to the process stdio.
func NewLocalExecutor(stdin io.Reader, stdout, stderr io.Writer, logger ports.Logger) *LocalExecutor {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &LocalExecutor{stdin: stdin, stdout: stdout, stderr: stderr, logger: logger}
}

// Run implements ports.CommandRunner. name is resolved against the PATH in
// env rather than the PATH of the current process.
func (e *LocalExecutor) Run(ctx context.Context, name string, env domain.Environment) error {
	path, err := LookPath(name, env.Get(domain.EnvPath))
	if err != nil {
		return err
	}

	c := exec.CommandContext(ctx, path)
	c.Env = env.Pairs()
	c.Stdin = e.stdin
	c.Stdout = e.stdout
	c.Stderr = e.stderr

	start := time.Now()
	err = c.Run()
	e.logger.Debug("command finished", map[string]interface{}{
		"path":        path,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%s exited with status %d", name, exitErr.ExitCode())
	}
	return err
}

// LookPath searches pathList for an executable called name. A name that
// contains a separator is checked directly.
func LookPath(name string, pathList string) (string, error) {
	if filepath.Base(name) != name {
		if filesystem.IsExecutable(name) {
			return name, nil
		}
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	for _, dir := range filepath.SplitList(pathList) {
		// An empty entry would mean the working directory.
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if filesystem.IsExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s: %w", name, ErrNotFound)
}

var _ ports.CommandRunner = (*LocalExecutor)(nil)
