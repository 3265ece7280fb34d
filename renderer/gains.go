package renderer

import (
	"fmt"
	"strings"

	"github.com/darcet/folio"
	"github.com/shopspring/decimal"
)

// GainsMarkdown renders the realized gains report of one portfolio, with a
// per-ticker breakdown computed by replaying each ticker in isolation.
func GainsMarkdown(ledger *folio.Ledger, portfolioID string) string {
	var b strings.Builder

	title := portfolioID
	if title == "" {
		title = "All Portfolios"
	}
	fmt.Fprintf(&b, "# Realized Gains: %s\n\n", title)
	fmt.Fprintf(&b, "Method: FIFO\n\n")

	fmt.Fprintln(&b, "| Ticker | Realized |")
	fmt.Fprintln(&b, "|:---|---:|")

	var total decimal.Decimal
	for ticker := range ledger.Tickers(portfolioID) {
		var txs []folio.Transaction
		for _, tx := range ledger.Transactions(folio.ByTicker(ticker)) {
			txs = append(txs, tx)
		}
		realized := folio.ComputeRealizedPL(txs, portfolioID)
		if realized.IsZero() {
			continue
		}
		total = total.Add(realized)
		fmt.Fprintf(&b, "| %s | %s |\n", ticker, formatSignedMoney(realized, ""))
	}
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", formatSignedMoney(total, ""))

	return b.String()
}
