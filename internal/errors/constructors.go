package errors

import "strings"

// Sentinels for the failures rn reports. Match with errors.Is.
var (
	ErrAlreadyInitialized = NewError(CategoryAlreadyExists, "rn is already initialized in this directory").Build()
	ErrNotInitialized     = NewError(CategoryNotFound, "rn is not initialized in this directory").Build()
	ErrConfigCorrupt      = NewError(CategoryConfig, "config file is not a valid settings record").Fatal().Build()
	ErrConfigWriteFailed  = NewError(CategoryFileSystem, "failed to save config").Fatal().Build()

	ErrDirectoryMissing  = NewError(CategoryValidation, "output directory missing").Build()
	ErrBinaryMissing     = NewError(CategoryValidation, "binary missing").Build()
	ErrArgumentsMissing  = NewError(CategoryValidation, "arguments missing").Build()
	ErrUnknownSubcommand = NewError(CategoryValidation, "unknown subcommand").Build()

	ErrProcessSpawnFailed = NewError(CategoryProcess, "failed to start process").Fatal().Build()
	ErrProcessWaitFailed  = NewError(CategoryProcess, "failed to wait for process").Fatal().Build()
	ErrProcessExited      = NewError(CategoryProcess, "process exited with non-zero status").Build()
)

// AlreadyInitialized reports that a settings file already exists at path.
func AlreadyInitialized(path string) *ClassifiedError {
	return ErrAlreadyInitialized.WithContext("path", path)
}

// NotInitialized reports that the settings file at path could not be opened.
func NotInitialized(path string, cause error) *ClassifiedError {
	return ErrNotInitialized.WithCause(cause).WithContext("path", path)
}

// ConfigCorrupt reports that the settings file at path did not decode.
func ConfigCorrupt(path string, cause error) *ClassifiedError {
	return ErrConfigCorrupt.WithCause(cause).WithContext("path", path)
}

// ConfigWriteFailed reports an I/O failure while saving path.
func ConfigWriteFailed(path string, cause error) *ClassifiedError {
	return ErrConfigWriteFailed.WithCause(cause).WithContext("path", path)
}

func DirectoryMissing() *ClassifiedError {
	return ErrDirectoryMissing.WithContext("field", "directory")
}

func BinaryMissing() *ClassifiedError {
	return ErrBinaryMissing.WithContext("field", "binary")
}

// UnknownSubcommand reports an operation the dispatcher does not handle.
func UnknownSubcommand(name string) *ClassifiedError {
	return ErrUnknownSubcommand.WithContext("command", name)
}

// ProcessSpawnFailed reports that argv could not be started.
func ProcessSpawnFailed(argv []string, cause error) *ClassifiedError {
	return ErrProcessSpawnFailed.WithCause(cause).WithContext("command", strings.Join(argv, " "))
}

// ProcessWaitFailed reports that waiting on argv failed for a reason other than its exit status.
func ProcessWaitFailed(argv []string, cause error) *ClassifiedError {
	return ErrProcessWaitFailed.WithCause(cause).WithContext("command", strings.Join(argv, " "))
}

// ProcessExited reports that argv ran and exited with a non-zero code.
func ProcessExited(argv []string, code int) *ClassifiedError {
	return ErrProcessExited.
		WithContext("command", strings.Join(argv, " ")).
		WithContext("exit_code", code)
}

// ExitCode returns the child exit code carried by a ProcessExited error.
func ExitCode(err error) (int, bool) {
	classified, ok := AsClassified(err)
	if !ok || !classified.Is(ErrProcessExited) {
		return 0, false
	}
	return classified.Context().GetInt("exit_code")
}
