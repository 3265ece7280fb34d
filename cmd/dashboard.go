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

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	portfolio string
	currency  string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "consolidated portfolio dashboard in one currency" }
func (*dashboardCmd) Usage() string {
	return `dashboard [-P <portfolio>] [-c <currency>]

  Displays the consolidated dashboard: totals, allocation breakdowns and top
  movers, with every value converted into the report currency.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "P", "", "Portfolio to report on, all portfolios if empty")
	f.StringVar(&c.currency, "c", "USD", "Report currency for market values")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	secs, err := folio.LoadSecurities(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading securities: %v\n", err)
		return subcommands.ExitFailure
	}
	prices, err := folio.LoadPrices(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}
	rates, err := folio.LoadRates(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rates: %v\n", err)
		return subcommands.ExitFailure
	}

	report := folio.NewDashboardReport(ledger, secs, prices, rates.For(c.currency), c.portfolio, c.currency)
	printMarkdown(renderer.DashboardMarkdown(report))
	return subcommands.ExitSuccess
}
