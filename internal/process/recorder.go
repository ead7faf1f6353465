package process

import (
	"context"
	"sync"
	"time"

	rnerrors "git.home.luguber.info/inful/rn/internal/errors"
)

// Recorder is an Invoker that records commands instead of running them.
// It is used by tests across the module.
type Recorder struct {
	mu       sync.Mutex
	commands []Command

	// ExitCode is returned for every recorded command.
	ExitCode int
	// SpawnErr, when set, makes every Run fail as if the executable could not start.
	SpawnErr error
}

// NewRecorder returns a Recorder whose commands all succeed.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Run records cmd and returns the configured outcome.
func (r *Recorder) Run(_ context.Context, cmd Command) (*Result, error) {
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	r.mu.Unlock()

	if r.SpawnErr != nil {
		return nil, rnerrors.ProcessSpawnFailed(cmd.Argv(), r.SpawnErr)
	}
	result := &Result{ExitCode: r.ExitCode, Duration: time.Millisecond}
	if r.ExitCode != 0 {
		return result, rnerrors.ProcessExited(cmd.Argv(), r.ExitCode)
	}
	return result, nil
}

// Commands returns a copy of everything Run has seen, oldest first.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}
