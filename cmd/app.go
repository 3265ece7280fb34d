// Package cmd implements the CLI application to track portfolio holdings.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/darcet/folio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&gainsCmd{}, "reports")
	c.Register(&dashboardCmd{}, "reports")

	c.Register(&priceCmd{}, "market data")
	c.Register(&rateCmd{}, "market data")
	c.Register(&declareCmd{}, "market data")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("dir", ".folio", "Path to the data directory")
var ledgerName = flag.String("ledger", "transactions", "Name of the ledger file to work on, without the .jsonl extension")

// decodeLedger loads the app ledger. A missing file yields an empty ledger.
func decodeLedger() (*folio.Ledger, error) {
	path := filepath.Join(*dataDir, *ledgerName+".jsonl")
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting from an empty ledger")
	}
	return folio.FindLedger(*dataDir, *ledgerName)
}

// saveLedger persists the app ledger back to the data directory.
func saveLedger(ledger *folio.Ledger) error {
	return folio.SaveLedger(*dataDir, ledger)
}

// appendTransaction validates a transaction, appends it to the app ledger and
// saves it.
func appendTransaction(tx folio.Transaction) subcommands.ExitStatus {
	if err := tx.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid transaction: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.Append(tx)
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully recorded %s of %s %s in ledger %s\n", tx.Action, tx.Quantity, tx.Ticker, ledger.Name())
	return subcommands.ExitSuccess
}
