package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the process exit code for an error.
// A child that exited non-zero hands its own code through; every other failure is 1.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := ExitCode(err); ok && code > 0 {
		return code
	}
	return 1
}

// FormatError renders err as a single line for the terminal.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	var msg string
	classified, ok := AsClassified(err)
	switch {
	case !ok:
		msg = err.Error()
	case a.verbose:
		msg = classified.Error()
	case classified.Cause() != nil:
		msg = fmt.Sprintf("%s: %v", classified.Message(), classified.Cause())
	default:
		msg = classified.Message()
	}
	if ok {
		if cmd, found := classified.Context().GetString("command"); found && cmd != "" {
			msg = fmt.Sprintf("%s (%s)", msg, cmd)
		}
	}

	return "rn: " + oneLine(msg)
}

// HandleError logs err, writes its diagnostic to w and returns the exit code.
func (a *CLIErrorAdapter) HandleError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	if a.verbose {
		a.logError(err)
	}

	_, _ = fmt.Fprintln(w, a.FormatError(err))
	return a.ExitCodeFor(err)
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	classified, ok := AsClassified(err)
	if !ok {
		a.logger.Error("Unclassified error", "error", err)
		return
	}

	attrs := []slog.Attr{
		slog.String("category", string(classified.Category())),
	}
	for key, value := range classified.Context() {
		attrs = append(attrs, slog.Any(key, value))
	}
	a.logger.LogAttrs(context.Background(), a.slogLevelFromSeverity(classified.Severity()), classified.Message(), attrs...)
}

// slogLevelFromSeverity converts ClassifiedError severity to slog level.
func (a *CLIErrorAdapter) slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityError, SeverityFatal:
		return slog.LevelError
	default:
		return slog.LevelError
	}
}

func oneLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, "; ")
}
