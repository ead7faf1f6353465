package commands

import "git.home.luguber.info/inful/rn/internal/dispatch"

// CleanCmd implements the 'clean' command.
type CleanCmd struct {
	Directory *string `help:"Output directory to clean" placeholder:"DIRECTORY"`
}

func (c *CleanCmd) Run(g *Global, _ *CLI) error {
	return g.Execute(dispatch.CleanOp{Directory: c.Directory})
}
