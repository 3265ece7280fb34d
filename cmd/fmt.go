package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct {
	check bool
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the ledger file in canonical form" }
func (*fmtCmd) Usage() string {
	return `fmt [-check]

  Rewrites the ledger file sorted by date with every transaction validated.
  With -check, the ledger is only validated and nothing is written.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.check, "check", false, "validate the ledger without rewriting it")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, tx := range ledger.All() {
		if err := tx.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid transaction %s: %v\n", tx.ID, err)
			status = subcommands.ExitFailure
		}
	}
	if c.check || status != subcommands.ExitSuccess {
		return status
	}

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted ledger %s\n", ledger.Name())
	return subcommands.ExitSuccess
}
