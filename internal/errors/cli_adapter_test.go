package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"already initialized", AlreadyInitialized(".rn"), 1},
		{"binary missing", BinaryMissing(), 1},
		{"child exit code passes through", ProcessExited([]string{"ninja", "-C", "out"}, 42), 42},
		{"spawn failure", ProcessSpawnFailed([]string{"ninja"}, fmt.Errorf("not found")), 1},
		{"unclassified error", &customError{msg: "unknown error"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"plain message", AlreadyInitialized(".rn"), "rn: rn is already initialized in this directory"},
		{"message with cause", NotInitialized(".rn", fmt.Errorf("open .rn: no such file")), "rn: rn is not initialized in this directory: open .rn: no such file"},
		{"command context", ProcessExited([]string{"ninja", "-C", "out"}, 1), "rn: process exited with non-zero status (ninja -C out)"},
		{"unclassified", &customError{msg: "boom"}, "rn: boom"},
		{"multi-line cause collapsed", ConfigCorrupt(".rn", fmt.Errorf("yaml: unmarshal errors:\n  line 1: bad")), "rn: config file is not a valid settings record: yaml: unmarshal errors:; line 1: bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.FormatError(tt.err); got != tt.want {
				t.Errorf("FormatError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	adapter := NewCLIErrorAdapter(true, logger)

	var out bytes.Buffer
	code := adapter.HandleError(&out, ProcessExited([]string{"./app"}, 7))

	if code != 7 {
		t.Errorf("HandleError() = %d, want 7", code)
	}
	if strings.Count(out.String(), "\n") != 1 {
		t.Errorf("expected exactly one diagnostic line, got %q", out.String())
	}
	if !strings.Contains(logs.String(), "category=process") {
		t.Errorf("expected category in verbose log, got %q", logs.String())
	}

	out.Reset()
	if code := adapter.HandleError(&out, nil); code != 0 || out.Len() != 0 {
		t.Errorf("HandleError(nil) = %d with output %q", code, out.String())
	}
}
