// Package process runs external tools with the terminal handed through.
package process

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	rnerrors "git.home.luguber.info/inful/rn/internal/errors"
	"git.home.luguber.info/inful/rn/internal/logfields"
)

// Command describes one child process.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory of the child. Empty means inherit.
	Dir string
}

// Argv returns the name followed by the arguments.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String renders the command line for logs and diagnostics.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// Result describes a child that ran to completion.
type Result struct {
	ExitCode int
	Duration time.Duration
}

// Invoker runs a command and blocks until it exits.
// A non-zero exit is reported as an ErrProcessExited error alongside the Result.
type Invoker interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// ExecInvoker runs commands with os/exec.
type ExecInvoker struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// NewExecInvoker returns an invoker whose children share this process's standard streams.
func NewExecInvoker() *ExecInvoker {
	return &ExecInvoker{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts cmd, waits for it and classifies the outcome.
func (e *ExecInvoker) Run(ctx context.Context, cmd Command) (*Result, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // running user-configured tools is the point
	c.Dir = cmd.Dir
	c.Stdin = e.Stdin
	c.Stdout = e.Stdout
	c.Stderr = e.Stderr

	logger.Debug("Starting process", logfields.Command(cmd.String()), logfields.Directory(cmd.Dir))

	start := time.Now()
	if err := c.Start(); err != nil {
		return nil, rnerrors.ProcessSpawnFailed(cmd.Argv(), err)
	}

	err := c.Wait()
	result := &Result{Duration: time.Since(start)}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, rnerrors.ProcessWaitFailed(cmd.Argv(), err)
		}
		result.ExitCode = exitErr.ExitCode()
		logger.Debug("Process exited",
			logfields.Command(cmd.String()),
			logfields.ExitCode(result.ExitCode),
			logfields.DurationMS(float64(result.Duration.Milliseconds())))
		return result, rnerrors.ProcessExited(cmd.Argv(), result.ExitCode)
	}

	logger.Debug("Process finished",
		logfields.Command(cmd.String()),
		logfields.DurationMS(float64(result.Duration.Milliseconds())))
	return result, nil
}
