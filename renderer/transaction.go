package renderer

import (
	"fmt"
	"strings"

	"github.com/darcet/folio"
)

// TransactionsMarkdown renders a chronological transaction listing.
func TransactionsMarkdown(title string, txs []folio.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions: %s\n\n", title)

	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Portfolio | Action | Ticker | Quantity | Price | Fees |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|---:|")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Date.Format("2006-01-02"),
			tx.PortfolioID,
			tx.Action,
			tx.Ticker,
			formatQuantity(tx.Quantity),
			formatMoney(tx.TradePrice, tx.Currency),
			formatMoney(tx.Fees, tx.Currency),
		)
	}
	return b.String()
}
