package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/darcet/folio"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// parseDay parses a YYYY-MM-DD transaction date.
func parseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// --- Buy Command ---

type buyCmd struct {
	date      string
	portfolio string
	ticker    string
	quantity  float64
	price     float64
	fees      float64
	currency  string
	exchange  string
	country   string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares to open or add to a position" }
func (*buyCmd) Usage() string {
	return `buy -P <portfolio> -t <ticker> -q <quantity> -p <price> [-d <date>] [-f <fees>] [-c <currency>]

  Purchases shares of a security and records the transaction in the ledger.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", today(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.portfolio, "P", "main", "Portfolio identifier")
	f.StringVar(&c.ticker, "t", "", "Security ticker")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.Float64Var(&c.fees, "f", 0, "Transaction fees")
	f.StringVar(&c.currency, "c", "USD", "Trade currency")
	f.StringVar(&c.exchange, "e", "", "Exchange the trade was executed on")
	f.StringVar(&c.country, "country", "", "Country of the security")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.quantity <= 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := folio.NewBuy(c.portfolio, day, c.ticker, decimal.NewFromFloat(c.quantity), decimal.NewFromFloat(c.price))
	tx.Fees = decimal.NewFromFloat(c.fees)
	tx.Currency = c.currency
	tx.Exchange = c.exchange
	tx.Country = c.country
	return appendTransaction(tx)
}

// --- Sell Command ---

type sellCmd struct {
	date      string
	portfolio string
	ticker    string
	quantity  float64
	price     float64
	fees      float64
	currency  string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares to trim or close a position" }
func (*sellCmd) Usage() string {
	return `sell -P <portfolio> -t <ticker> -q <quantity> -p <price> [-d <date>] [-f <fees>] [-c <currency>]

  Sells shares of a security and records the transaction in the ledger.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", today(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.portfolio, "P", "main", "Portfolio identifier")
	f.StringVar(&c.ticker, "t", "", "Security ticker")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.Float64Var(&c.fees, "f", 0, "Transaction fees")
	f.StringVar(&c.currency, "c", "USD", "Trade currency")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.quantity <= 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := folio.NewSell(c.portfolio, day, c.ticker, decimal.NewFromFloat(c.quantity), decimal.NewFromFloat(c.price))
	tx.Fees = decimal.NewFromFloat(c.fees)
	tx.Currency = c.currency
	return appendTransaction(tx)
}
