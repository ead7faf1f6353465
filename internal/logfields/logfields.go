package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyInvocationID = "invocation_id"
	KeyOperation    = "operation"
	KeyPath         = "path"
	KeyDirectory    = "directory"
	KeyBinary       = "binary"
	KeyArguments    = "arguments"
	KeyCommand      = "command"
	KeyExitCode     = "exit_code"
	KeyDurationMS   = "duration_ms"
	KeySource       = "source" // "flag" or "config"
	KeyError        = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func InvocationID(id string) slog.Attr { return slog.String(KeyInvocationID, id) }
func Operation(op string) slog.Attr    { return slog.String(KeyOperation, op) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Directory(d string) slog.Attr     { return slog.String(KeyDirectory, d) }
func Binary(b string) slog.Attr        { return slog.String(KeyBinary, b) }
func Arguments(a string) slog.Attr     { return slog.String(KeyArguments, a) }
func Command(c string) slog.Attr       { return slog.String(KeyCommand, c) }
func ExitCode(code int) slog.Attr      { return slog.Int(KeyExitCode, code) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Source(s string) slog.Attr        { return slog.String(KeySource, s) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
