package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/darcet/folio"
	"github.com/darcet/folio/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	portfolio string
	strict    bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the open positions of a portfolio" }
func (*holdingsCmd) Usage() string {
	return `holdings [-P <portfolio>] [-strict]

  Replays the ledger and displays the open positions with their average cost,
  current value and unrealized gains. Without -P, all portfolios are merged.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "P", "", "Portfolio to report on, all portfolios if empty")
	f.BoolVar(&c.strict, "strict", false, "fail on sells that exceed the held quantity")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	prices, err := folio.LoadPrices(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}

	var holdings []folio.Holding
	if c.strict {
		holdings, err = folio.ComputeHoldingsStrict(ledger.All(), c.portfolio, prices)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error replaying ledger: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		holdings = ledger.Holdings(c.portfolio, prices)
	}

	printMarkdown(renderer.HoldingsMarkdown(c.portfolio, holdings))
	return subcommands.ExitSuccess
}
