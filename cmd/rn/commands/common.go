package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/rn/internal/config"
	"git.home.luguber.info/inful/rn/internal/dispatch"
	rnerrors "git.home.luguber.info/inful/rn/internal/errors"
	"git.home.luguber.info/inful/rn/internal/logfields"
	"git.home.luguber.info/inful/rn/internal/process"
	"git.home.luguber.info/inful/rn/internal/version"
)

// Global carries what every subcommand needs once flags are parsed.
type Global struct {
	Context    context.Context
	Logger     *slog.Logger
	Dispatcher *dispatch.Dispatcher
}

// Execute runs op through the dispatcher.
func (g *Global) Execute(op dispatch.Operation) error {
	return g.Dispatcher.Execute(g.Context, op)
}

// CLI definition & global flags.
type CLI struct {
	Root      string           `help:"Directory holding the .rn file" default:"." env:"RN_ROOT" placeholder:"DIR"`
	BuildTool string           `name:"build-tool" help:"Build tool invoked as '<tool> -C <dir>'" default:"ninja" env:"RN_BUILD_TOOL"`
	CleanTool string           `name:"clean-tool" help:"Clean tool invoked as '<tool> clean <dir>'" default:"gn" env:"RN_CLEAN_TOOL"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init   InitCmd   `cmd:"" help:"Init rn in this directory"`
	Update UpdateCmd `cmd:"" help:"Update the stored defaults"`
	Build  BuildCmd  `cmd:"" help:"Run the build tool"`
	Run    RunCmd    `cmd:"" help:"Run the binary"`
	Clean  CleanCmd  `cmd:"" help:"Clean up the output directory"`
	Print  PrintCmd  `cmd:"" help:"Print the stored defaults"`

	logger *slog.Logger `kong:"-"`
	stderr io.Writer    `kong:"-"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	w := c.stderr
	if w == nil {
		w = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With(logfields.InvocationID(uuid.NewString()))
	slog.SetDefault(logger)
	c.logger = logger
	return nil
}

// Logger returns the logger configured by AfterApply, or the default one.
func (c *CLI) Logger() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// NewParser builds the kong parser for rn.
func NewParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	opts := append([]kong.Option{
		kong.Name("rn"),
		kong.Description("Helper program for gn and ninja projects"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	}, options...)
	return kong.New(cli, opts...)
}

// Streams are the standard streams handed to the dispatcher and children.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// exitRequest carries the code kong asks to exit with after --help or --version.
type exitRequest struct{ code int }

// Main parses args, executes the selected operation and returns the exit code.
func Main(ctx context.Context, args []string, invoker process.Invoker, streams Streams, options ...kong.Option) (code int) {
	defer func() {
		if r := recover(); r != nil {
			req, ok := r.(exitRequest)
			if !ok {
				panic(r)
			}
			code = req.code
		}
	}()

	if files, err := config.LoadEnv(RootFromArgs(args)); err != nil {
		slog.Warn("Failed to load environment file", logfields.Error(err))
	} else {
		for _, f := range files {
			slog.Debug("Loaded environment file", logfields.Path(f))
		}
	}

	cli := CLI{stderr: streams.Stderr}
	parser, err := NewParser(&cli, append([]kong.Option{
		kong.Writers(streams.Stdout, streams.Stderr),
		kong.Exit(func(status int) { panic(exitRequest{code: status}) }),
	}, options...)...)
	if err != nil {
		return rnerrors.NewCLIErrorAdapter(false, nil).HandleError(streams.Stderr, err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	logger := cli.Logger()
	global := &Global{
		Context: ctx,
		Logger:  logger,
		Dispatcher: dispatch.NewDispatcher(config.NewStore(cli.Root), invoker).
			WithTools(dispatch.Tools{Build: cli.BuildTool, Clean: cli.CleanTool}).
			WithOutput(streams.Stdout).
			WithLogger(logger),
	}

	err = kctx.Run(global, &cli)
	return rnerrors.NewCLIErrorAdapter(cli.Verbose, logger).HandleError(streams.Stderr, err)
}

// RootFromArgs finds the configuration root before kong runs, so the root's
// .env files can feed kong's env defaults. It honours --root and RN_ROOT.
func RootFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--root="); ok {
			return v
		}
		if arg == "--root" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("RN_ROOT"); v != "" {
		return v
	}
	return "."
}
