package commands

import (
	"git.home.luguber.info/inful/rn/internal/config"
	"git.home.luguber.info/inful/rn/internal/dispatch"
)

// UpdateCmd implements the 'update' command. Only flags given on the command line change.
type UpdateCmd struct {
	DefaultDir  *string `name:"default-dir" help:"Set the default output directory" placeholder:"DIRECTORY"`
	DefaultBin  *string `name:"default-bin" help:"Set the default binary to run" placeholder:"BINARY"`
	DefaultArgs *string `name:"default-args" help:"Set the default arguments for the binary" placeholder:"ARGUMENTS"`
}

func (u *UpdateCmd) Run(g *Global, _ *CLI) error {
	return g.Execute(dispatch.UpdateOp{Overrides: config.Overrides{
		Directory: u.DefaultDir,
		Binary:    u.DefaultBin,
		Arguments: u.DefaultArgs,
	}})
}
