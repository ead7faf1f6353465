package commands

import "git.home.luguber.info/inful/rn/internal/dispatch"

// InitCmd implements the 'init' command.
type InitCmd struct {
	DefaultDir  string `name:"default-dir" required:"" help:"Set the default output directory" placeholder:"DIRECTORY"`
	DefaultBin  string `name:"default-bin" required:"" help:"Set the default binary to run" placeholder:"BINARY"`
	DefaultArgs string `name:"default-args" help:"Set the default arguments for the binary" placeholder:"ARGUMENTS"`
}

func (i *InitCmd) Run(g *Global, _ *CLI) error {
	return g.Execute(dispatch.InitOp{
		Directory: i.DefaultDir,
		Binary:    i.DefaultBin,
		Arguments: i.DefaultArgs,
	})
}
