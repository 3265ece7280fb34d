package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/darcet/folio"
	"github.com/google/subcommands"
)

// declareCmd holds the flags for the 'declare' subcommand.
type declareCmd struct {
	ticker   string
	name     string
	sector   string
	country  string
	currency string
}

func (*declareCmd) Name() string     { return "declare" }
func (*declareCmd) Synopsis() string { return "declare a security in the securities database" }
func (*declareCmd) Usage() string {
	return `declare -t <ticker> [-name <name>] [-sector <sector>] [-country <country>] [-c <currency>]

  Declares a security. The dashboard uses the declaration to group holdings
  by sector; undeclared tickers fall into the Unclassified group.
`
}

func (c *declareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Security ticker")
	f.StringVar(&c.name, "name", "", "Security full name")
	f.StringVar(&c.sector, "sector", "", "Sector the security belongs to")
	f.StringVar(&c.country, "country", "", "Country of the security")
	f.StringVar(&c.currency, "c", "", "Currency the security trades in")
}

func (c *declareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	secs, err := folio.LoadSecurities(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading securities: %v\n", err)
		return subcommands.ExitFailure
	}
	secs.Add(folio.Security{
		Ticker:   c.ticker,
		Name:     c.name,
		Sector:   c.sector,
		Country:  c.country,
		Currency: c.currency,
	})
	if err := folio.SaveSecurities(*dataDir, secs); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving securities: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Declared security %s\n", c.ticker)
	return subcommands.ExitSuccess
}
