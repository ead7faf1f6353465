package commands

import "git.home.luguber.info/inful/rn/internal/dispatch"

// PrintCmd implements the 'print' command.
type PrintCmd struct{}

func (p *PrintCmd) Run(g *Global, _ *CLI) error {
	return g.Execute(dispatch.PrintOp{})
}
