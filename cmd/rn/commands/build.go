package commands

import "git.home.luguber.info/inful/rn/internal/dispatch"

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Directory *string `help:"Path to directory with build script" placeholder:"DIRECTORY"`
}

func (b *BuildCmd) Run(g *Global, _ *CLI) error {
	return g.Execute(dispatch.BuildOp{Directory: b.Directory})
}
