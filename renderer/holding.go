package renderer

import (
	"fmt"
	"strings"

	"github.com/darcet/folio"
)

// HoldingsMarkdown renders the holdings table of one portfolio.
func HoldingsMarkdown(portfolioID string, holdings []folio.Holding) string {
	var b strings.Builder

	title := portfolioID
	if title == "" {
		title = "All Portfolios"
	}
	fmt.Fprintf(&b, "# Holdings: %s\n\n", title)

	if len(holdings) == 0 {
		fmt.Fprintln(&b, "No open positions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Ticker | Quantity | Avg Buy | Price | Value | Unrealized | % | Alloc |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|")
	for _, h := range holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			h.Ticker,
			formatQuantity(h.Quantity),
			formatMoney(h.AvgBuyPrice, h.Currency),
			formatMoney(h.CurrentPrice, h.Currency),
			formatMoney(h.CurrentValue, h.Currency),
			formatSignedMoney(h.UnrealizedPL, h.Currency),
			formatSignedPercent(h.UnrealizedPLPercent),
			formatPercent(h.Allocation),
		)
	}
	return b.String()
}
