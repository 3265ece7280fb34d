package renderer

import (
	"fmt"
	"strings"

	"github.com/darcet/folio"
)

// DashboardMarkdown renders the consolidated dashboard report.
func DashboardMarkdown(r *folio.DashboardReport) string {
	var b strings.Builder

	title := r.PortfolioID
	if title == "" {
		title = "All Portfolios"
	}
	fmt.Fprintf(&b, "# Dashboard: %s (%s)\n\n", title, r.Currency)

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Value | %s |\n", formatMoney(r.TotalValue, r.Currency))
	fmt.Fprintf(&b, "| Total Invested | %s |\n", formatMoney(r.TotalInvested, r.Currency))
	fmt.Fprintf(&b, "| Unrealized P&L | %s |\n", formatSignedMoney(r.TotalUnrealizedPL, r.Currency))
	// Realized gains aggregate sells in their trade currencies and are not
	// converted, so they carry no currency symbol.
	fmt.Fprintf(&b, "| Realized P&L | %s |\n", formatSignedMoney(r.RealizedPL, ""))
	fmt.Fprintln(&b)

	if len(r.Holdings) > 0 {
		fmt.Fprint(&b, "## Positions\n\n")
		fmt.Fprintln(&b, "| Ticker | Quantity | Value | Unrealized | % | Alloc |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
		for _, h := range r.Holdings {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				h.Ticker,
				formatQuantity(h.Quantity),
				formatMoney(h.CurrentValue, r.Currency),
				formatSignedMoney(h.UnrealizedPL, r.Currency),
				formatSignedPercent(h.UnrealizedPLPercent),
				formatPercent(h.Allocation),
			)
		}
		fmt.Fprintln(&b)
	}

	writeAllocation(&b, "By Sector", r.BySector, r.Currency)
	writeAllocation(&b, "By Country", r.ByCountry, r.Currency)
	writeAllocation(&b, "By Currency", r.ByCurrency, r.Currency)
	writeMovers(&b, "Top Gainers", r.TopGainers)
	writeMovers(&b, "Top Losers", r.TopLosers)

	return b.String()
}

func writeAllocation(b *strings.Builder, title string, slices []folio.AllocationSlice, currency string) {
	if len(slices) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	fmt.Fprintln(b, "| | Value | Weight |")
	fmt.Fprintln(b, "|:---|---:|---:|")
	for _, s := range slices {
		fmt.Fprintf(b, "| %s | %s | %s |\n", s.Label, formatMoney(s.Value, currency), formatPercent(s.Weight))
	}
	fmt.Fprintln(b)
}

func writeMovers(b *strings.Builder, title string, holdings []folio.Holding) {
	if len(holdings) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	fmt.Fprintln(b, "| Ticker | % | Unrealized |")
	fmt.Fprintln(b, "|:---|---:|---:|")
	for _, h := range holdings {
		fmt.Fprintf(b, "| %s | %s | %s |\n", h.Ticker, formatSignedPercent(h.UnrealizedPLPercent), formatSignedMoney(h.UnrealizedPL, h.Currency))
	}
	fmt.Fprintln(b)
}
