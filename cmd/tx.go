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

type txCmd struct {
	portfolio string
	ticker    string
	head      int
	tail      int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the ledger" }
func (*txCmd) Usage() string {
	return `tx [-P <portfolio>] [-t <ticker>] [-head <n>] [-tail <n>]

  Lists transactions from the ledger in chronological order, with options for
  filtering and limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "P", "", "Only transactions of this portfolio")
	f.StringVar(&c.ticker, "t", "", "Only transactions of this ticker")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	var filters []func(folio.Transaction) bool
	if c.portfolio != "" {
		filters = append(filters, folio.ByPortfolio(c.portfolio))
	}
	if c.ticker != "" {
		filters = append(filters, folio.ByTicker(c.ticker))
	}

	var transactions []folio.Transaction
	for _, tx := range ledger.Transactions(filters...) {
		transactions = append(transactions, tx)
	}

	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	title := c.portfolio
	if title == "" {
		title = ledger.Name()
	}
	printMarkdown(renderer.TransactionsMarkdown(title, transactions))
	return subcommands.ExitSuccess
}
