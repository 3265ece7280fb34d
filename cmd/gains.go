package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/darcet/folio/renderer"
	"github.com/google/subcommands"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	portfolio string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized gains per security, FIFO" }
func (*gainsCmd) Usage() string {
	return `gains [-P <portfolio>]

  Calculates and displays the realized gains of each security by matching
  sells against the oldest purchase lots first.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "P", "", "Portfolio to report on, all portfolios if empty")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.GainsMarkdown(ledger, c.portfolio))
	return subcommands.ExitSuccess
}
