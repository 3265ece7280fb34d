package folio

import (
	"sort"

	"github.com/shopspring/decimal"
)

// topMoverCount limits the gainer and loser lists on the dashboard.
const topMoverCount = 3

// AllocationSlice is one group's share of the total current value.
type AllocationSlice struct {
	Label  string
	Value  decimal.Decimal // in the report currency
	Weight decimal.Decimal // percent of total current value
}

// DashboardReport consolidates every figure the dashboard displays, with all
// monetary values converted into a single report currency.
type DashboardReport struct {
	PortfolioID string // empty when consolidated across all portfolios
	Currency    string // the report currency

	Holdings []Holding // converted copies, re-weighted in the report currency

	TotalValue        decimal.Decimal
	TotalInvested     decimal.Decimal
	TotalUnrealizedPL decimal.Decimal
	RealizedPL        decimal.Decimal

	BySector   []AllocationSlice
	ByCountry  []AllocationSlice
	ByCurrency []AllocationSlice

	TopGainers []Holding
	TopLosers  []Holding
}

// NewDashboardReport replays the ledger for one portfolio (or all of them
// when portfolioID is empty) and assembles the consolidated dashboard in the
// requested currency.
//
// Holdings are converted with the rate supplied for their currency; a
// currency with no rate degrades to 1:1 so the dashboard never shows a hole.
// Sector grouping comes from the securities database when the ticker is
// declared there, "Unclassified" otherwise.
func NewDashboardReport(ledger *Ledger, secs *Securities, prices PriceLookup, rates RateLookup, portfolioID, currency string) *DashboardReport {
	report := &DashboardReport{
		PortfolioID: portfolioID,
		Currency:    currency,
	}

	holdings := ledger.Holdings(portfolioID, prices)
	report.Holdings = make([]Holding, 0, len(holdings))
	for _, h := range holdings {
		converted := convertHolding(h, rates, currency)
		report.TotalValue = report.TotalValue.Add(converted.CurrentValue)
		report.TotalInvested = report.TotalInvested.Add(converted.InvestedValue)
		report.TotalUnrealizedPL = report.TotalUnrealizedPL.Add(converted.UnrealizedPL)
		report.Holdings = append(report.Holdings, converted)
	}

	// Conversion shifts the relative weights, so allocations are recomputed
	// on the converted values.
	if !report.TotalValue.IsZero() {
		for i := range report.Holdings {
			report.Holdings[i].Allocation = report.Holdings[i].CurrentValue.Div(report.TotalValue).Mul(hundred)
		}
	}

	report.RealizedPL = ledger.RealizedPL(portfolioID)

	report.BySector = report.groupBy(func(h Holding) string {
		if sec := secs.Get(h.Ticker); sec != nil && sec.Sector != "" {
			return sec.Sector
		}
		return "Unclassified"
	})
	report.ByCountry = report.groupBy(func(h Holding) string {
		if h.Country != "" {
			return h.Country
		}
		return "Unclassified"
	})
	report.ByCurrency = report.groupBy(func(h Holding) string {
		if h.Currency != "" {
			return h.Currency
		}
		return currency
	})

	report.TopGainers, report.TopLosers = topMovers(report.Holdings)
	return report
}

// convertHolding rescales a holding's monetary fields into the report
// currency. Quantities and percentages are unaffected.
func convertHolding(h Holding, rates RateLookup, currency string) Holding {
	rate := decimal.NewFromInt(1)
	if h.Currency != "" && h.Currency != currency && rates != nil {
		if r, ok := rates.Rate(h.Currency); ok {
			rate = r
		}
	}
	h.AvgBuyPrice = h.AvgBuyPrice.Mul(rate)
	h.InvestedValue = h.InvestedValue.Mul(rate)
	h.CurrentPrice = h.CurrentPrice.Mul(rate)
	h.CurrentValue = h.CurrentValue.Mul(rate)
	h.UnrealizedPL = h.UnrealizedPL.Mul(rate)
	return h
}

// groupBy reduces the converted holdings into allocation slices, sorted by
// descending weight then label.
func (r *DashboardReport) groupBy(label func(Holding) string) []AllocationSlice {
	values := make(map[string]decimal.Decimal)
	for _, h := range r.Holdings {
		key := label(h)
		values[key] = values[key].Add(h.CurrentValue)
	}

	slices := make([]AllocationSlice, 0, len(values))
	for key, value := range values {
		slice := AllocationSlice{Label: key, Value: value}
		if !r.TotalValue.IsZero() {
			slice.Weight = value.Div(r.TotalValue).Mul(hundred)
		}
		slices = append(slices, slice)
	}
	sort.Slice(slices, func(i, j int) bool {
		if !slices[i].Value.Equal(slices[j].Value) {
			return slices[i].Value.GreaterThan(slices[j].Value)
		}
		return slices[i].Label < slices[j].Label
	})
	return slices
}

// topMovers picks the best and worst holdings by unrealized P&L percent.
// Only actual gainers make the gainer list, and only actual losers the loser
// list; a flat portfolio reports neither.
func topMovers(holdings []Holding) (gainers, losers []Holding) {
	byPercent := make([]Holding, len(holdings))
	copy(byPercent, holdings)
	sort.SliceStable(byPercent, func(i, j int) bool {
		return byPercent[i].UnrealizedPLPercent.GreaterThan(byPercent[j].UnrealizedPLPercent)
	})

	for _, h := range byPercent {
		if len(gainers) == topMoverCount {
			break
		}
		if h.UnrealizedPLPercent.IsPositive() {
			gainers = append(gainers, h)
		}
	}
	for i := len(byPercent) - 1; i >= 0; i-- {
		if len(losers) == topMoverCount {
			break
		}
		if byPercent[i].UnrealizedPLPercent.IsNegative() {
			losers = append(losers, byPercent[i])
		}
	}
	return gainers, losers
}
