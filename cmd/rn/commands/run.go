package commands

import "git.home.luguber.info/inful/rn/internal/dispatch"

// RunCmd implements the 'run' command.
type RunCmd struct {
	Directory *string `help:"Run binary from this directory" placeholder:"DIRECTORY"`
	Binary    *string `help:"Binary to run" placeholder:"BINARY"`
	Arguments *string `help:"Argument string passed to the binary" placeholder:"ARGUMENTS"`
}

func (r *RunCmd) Run(g *Global, _ *CLI) error {
	return g.Execute(dispatch.RunOp{
		Directory: r.Directory,
		Binary:    r.Binary,
		Arguments: r.Arguments,
	})
}
