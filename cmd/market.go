package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/darcet/folio"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// --- Price Command ---

type priceCmd struct {
	ticker string
	price  float64
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "record the current price of a security" }
func (*priceCmd) Usage() string {
	return `price -t <ticker> -p <price>

  Records the quoted price used to value holdings. Securities without a quote
  are valued at their average buy price.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Security ticker")
	f.Float64Var(&c.price, "p", 0, "Current price per share")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	prices, err := folio.LoadPrices(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}
	prices[c.ticker] = decimal.NewFromFloat(c.price)
	if err := folio.SavePrices(*dataDir, prices); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving prices: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded price of %s\n", c.ticker)
	return subcommands.ExitSuccess
}

// --- Rate Command ---

type rateCmd struct {
	from string
	to   string
	rate float64
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "record an exchange rate between two currencies" }
func (*rateCmd) Usage() string {
	return `rate -from <currency> -to <currency> -r <rate>

  Records the value of one unit of the from currency expressed in the to
  currency. The dashboard uses it to consolidate multi-currency holdings.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Currency to convert from")
	f.StringVar(&c.to, "to", "", "Currency to convert to")
	f.Float64Var(&c.rate, "r", 0, "Value of one unit of from in to")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" || c.rate <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	rates, err := folio.LoadRates(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rates: %v\n", err)
		return subcommands.ExitFailure
	}
	rates.Set(c.from, c.to, decimal.NewFromFloat(c.rate))
	if err := folio.SaveRates(*dataDir, rates); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving rates: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded rate %s/%s\n", c.from, c.to)
	return subcommands.ExitSuccess
}
