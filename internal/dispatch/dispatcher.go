// Package dispatch executes rn operations against the settings store and
// the process invoker.
package dispatch

import (
	"context"
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/rn/internal/config"
	rnerrors "git.home.luguber.info/inful/rn/internal/errors"
	"git.home.luguber.info/inful/rn/internal/logfields"
	"git.home.luguber.info/inful/rn/internal/process"
)

// Tools names the external executables rn shells out to.
type Tools struct {
	// Build is invoked as "<Build> -C <directory>".
	Build string
	// Clean is invoked as "<Clean> clean <directory>".
	Clean string
}

// DefaultTools returns the gn/ninja pair.
func DefaultTools() Tools {
	return Tools{Build: "ninja", Clean: "gn"}
}

// Dispatcher runs one Operation per call.
type Dispatcher struct {
	store   *config.Store
	invoker process.Invoker
	tools   Tools
	stdout  io.Writer
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher using the default tools and os.Stdout.
func NewDispatcher(store *config.Store, invoker process.Invoker) *Dispatcher {
	return &Dispatcher{
		store:   store,
		invoker: invoker,
		tools:   DefaultTools(),
		stdout:  os.Stdout,
		logger:  slog.Default(),
	}
}

// WithTools overrides the build and clean tools. Empty names keep the current value.
func (d *Dispatcher) WithTools(tools Tools) *Dispatcher {
	if tools.Build != "" {
		d.tools.Build = tools.Build
	}
	if tools.Clean != "" {
		d.tools.Clean = tools.Clean
	}
	return d
}

// WithOutput sets where print writes.
func (d *Dispatcher) WithOutput(w io.Writer) *Dispatcher {
	d.stdout = w
	return d
}

// WithLogger sets the logger.
func (d *Dispatcher) WithLogger(logger *slog.Logger) *Dispatcher {
	d.logger = logger
	return d
}

// Execute runs op.
func (d *Dispatcher) Execute(ctx context.Context, op Operation) error {
	if op == nil {
		return rnerrors.UnknownSubcommand("")
	}
	d.logger.Debug("Executing operation", logfields.Operation(op.Name()), logfields.Path(d.store.Path()))

	switch o := op.(type) {
	case InitOp:
		return d.init(o)
	case UpdateOp:
		return d.update(o)
	case BuildOp:
		return d.build(ctx, o)
	case RunOp:
		return d.run(ctx, o)
	case CleanOp:
		return d.clean(ctx, o)
	case PrintOp:
		return d.print()
	default:
		return rnerrors.UnknownSubcommand(op.Name())
	}
}

func (d *Dispatcher) init(op InitOp) error {
	if d.store.Exists() {
		return rnerrors.AlreadyInitialized(d.store.Path())
	}
	if err := op.Validate(); err != nil {
		return err
	}

	settings := config.New(op.Directory, op.Binary, op.Arguments)
	if err := d.store.Save(settings); err != nil {
		return err
	}
	d.logger.Debug("Initialized settings",
		logfields.Path(d.store.Path()),
		logfields.Directory(settings.Directory),
		logfields.Binary(settings.Binary),
		logfields.Arguments(settings.Arguments))
	return nil
}

func (d *Dispatcher) update(op UpdateOp) error {
	settings, err := d.store.Load()
	if err != nil {
		return err
	}

	switch {
	case op.Overrides.IsEmpty():
		d.logger.Debug("No overrides supplied", logfields.Path(d.store.Path()))
	case !settings.Apply(op.Overrides):
		d.logger.Debug("No settings changed", logfields.Path(d.store.Path()))
	}
	if err := requireDefaults(settings.Directory, settings.Binary); err != nil {
		return err
	}
	return d.store.Save(settings)
}

func (d *Dispatcher) build(ctx context.Context, op BuildOp) error {
	settings, err := d.store.Load()
	if err != nil {
		return err
	}
	dir, err := resolveDirectory(op.Directory, settings.Directory)
	if err != nil {
		return err
	}
	d.logger.Debug("Resolved directory", logfields.Directory(dir.value), logfields.Source(dir.source))

	return d.invoke(ctx, process.Command{
		Name: d.tools.Build,
		Args: []string{"-C", dir.value},
		Dir:  d.store.Root(),
	})
}

func (d *Dispatcher) run(ctx context.Context, op RunOp) error {
	settings, err := d.store.Load()
	if err != nil {
		return err
	}
	dir, err := resolveDirectory(op.Directory, settings.Directory)
	if err != nil {
		return err
	}
	bin, err := resolveBinary(op.Binary, settings.Binary)
	if err != nil {
		return err
	}
	args := resolveArguments(op.Arguments, settings.Arguments)

	d.logger.Debug("Resolved run target",
		logfields.Directory(dir.value),
		logfields.Binary(bin.value),
		logfields.Arguments(args.value))

	cmd := process.Command{
		Name: executablePath(bin.value),
		Dir:  underRoot(d.store.Root(), dir.value),
	}
	if args.value != "" {
		cmd.Args = []string{args.value}
	}
	return d.invoke(ctx, cmd)
}

func (d *Dispatcher) clean(ctx context.Context, op CleanOp) error {
	settings, err := d.store.Load()
	if err != nil {
		return err
	}
	dir, err := resolveDirectory(op.Directory, settings.Directory)
	if err != nil {
		return err
	}
	d.logger.Debug("Resolved directory", logfields.Directory(dir.value), logfields.Source(dir.source))

	return d.invoke(ctx, process.Command{
		Name: d.tools.Clean,
		Args: []string{"clean", dir.value},
		Dir:  d.store.Root(),
	})
}

func (d *Dispatcher) print() error {
	settings, err := d.store.Load()
	if err != nil {
		return err
	}
	return d.store.Print(d.stdout, settings)
}

func (d *Dispatcher) invoke(ctx context.Context, cmd process.Command) error {
	result, err := d.invoker.Run(ctx, cmd)
	if err != nil {
		return err
	}
	d.logger.Debug("Command completed",
		logfields.Command(cmd.String()),
		logfields.ExitCode(result.ExitCode),
		logfields.DurationMS(float64(result.Duration.Milliseconds())))
	return nil
}
