package dispatch

import (
	"git.home.luguber.info/inful/rn/internal/config"
	rnerrors "git.home.luguber.info/inful/rn/internal/errors"
)

// Operation is one of the operations rn performs per invocation.
// The set is closed: only types in this package implement it.
type Operation interface {
	Name() string
	operation()
}

// InitOp creates the settings file.
type InitOp struct {
	Directory string
	Binary    string
	Arguments string
}

// UpdateOp replaces the stored fields that were supplied.
type UpdateOp struct {
	Overrides config.Overrides
}

// BuildOp runs the build tool against the output directory.
type BuildOp struct {
	Directory *string
}

// RunOp runs the produced binary from inside the output directory.
type RunOp struct {
	Directory *string
	Binary    *string
	Arguments *string
}

// CleanOp runs the clean tool against the output directory.
type CleanOp struct {
	Directory *string
}

// PrintOp writes the stored settings to the dispatcher's output.
type PrintOp struct{}

func (InitOp) Name() string   { return "init" }
func (UpdateOp) Name() string { return "update" }
func (BuildOp) Name() string  { return "build" }
func (RunOp) Name() string    { return "run" }
func (CleanOp) Name() string  { return "clean" }
func (PrintOp) Name() string  { return "print" }

func (InitOp) operation()   {}
func (UpdateOp) operation() {}
func (BuildOp) operation()  {}
func (RunOp) operation()    {}
func (CleanOp) operation()  {}
func (PrintOp) operation()  {}

// Validate checks that the mandatory defaults were given.
func (o InitOp) Validate() error {
	return requireDefaults(o.Directory, o.Binary)
}

// requireDefaults rejects a settings record without a directory or binary.
func requireDefaults(directory, binary string) error {
	if directory == "" {
		return rnerrors.DirectoryMissing()
	}
	if binary == "" {
		return rnerrors.BinaryMissing()
	}
	return nil
}
