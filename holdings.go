package folio

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrOversell reports a sell that exceeds the tracked position for a ticker.
// It is only returned by the strict replay variants; the default replays
// absorb oversells silently to stay compatible with hand-entered ledgers.
var ErrOversell = errors.New("sell exceeds tracked position")

var hundred = decimal.NewFromInt(100)

// Holding is an open position produced by replaying a portfolio's
// transactions. Monetary fields are expressed in the holding's own currency.
type Holding struct {
	Ticker              string
	Quantity            decimal.Decimal
	AvgBuyPrice         decimal.Decimal // weighted-average cost per unit
	InvestedValue       decimal.Decimal // Quantity * AvgBuyPrice
	CurrentPrice        decimal.Decimal
	CurrentValue        decimal.Decimal // Quantity * CurrentPrice
	UnrealizedPL        decimal.Decimal // CurrentValue - InvestedValue
	UnrealizedPLPercent decimal.Decimal // zero when InvestedValue is zero
	Allocation          decimal.Decimal // percent of total current value, zero when the total is zero
	Currency            string
	Exchange            string
	Country             string
}

// position tracks the weighted-average running totals for one ticker during
// the holdings replay.
type position struct {
	totalQuantity decimal.Decimal
	totalCost     decimal.Decimal
	avgBuyPrice   decimal.Decimal
	currency      string
	exchange      string
	country       string
}

// ComputeHoldings replays a portfolio's transactions in chronological order
// and returns its open positions, one per ticker with a positive quantity.
//
// The replay uses the weighted-average cost method: every buy folds into a
// single blended cost per unit, and a sell shrinks quantity and cost
// proportionally, leaving the average untouched. This is deliberately not
// the FIFO method used by ComputeRealizedPL; the two figures are reported
// independently and must not be unified.
//
// A ticker with no price available from prices falls back to its average
// buy price, so its unrealized P&L reads zero until a price shows up.
// A sell exceeding the tracked quantity deletes the position outright; the
// negative remainder is discarded, never carried as a short position.
//
// An empty portfolioID replays every portfolio in txs, merging positions by
// ticker. The input slice is never modified and the function keeps no state
// between calls.
func ComputeHoldings(txs []Transaction, portfolioID string, prices PriceLookup) []Holding {
	holdings, _ := replayHoldings(txs, portfolioID, prices, false)
	return holdings
}

// ComputeHoldingsStrict is ComputeHoldings with oversell checking: a sell
// larger than the tracked position returns ErrOversell instead of silently
// deleting the position.
func ComputeHoldingsStrict(txs []Transaction, portfolioID string, prices PriceLookup) ([]Holding, error) {
	return replayHoldings(txs, portfolioID, prices, true)
}

func replayHoldings(txs []Transaction, portfolioID string, prices PriceLookup, strict bool) ([]Holding, error) {
	positions := make(map[string]*position)

	for _, tx := range chronological(txs, portfolioID) {
		switch tx.Action {
		case Buy:
			pos := positions[tx.Ticker]
			if pos == nil {
				pos = &position{}
				positions[tx.Ticker] = pos
			}
			pos.totalQuantity = pos.totalQuantity.Add(tx.Quantity)
			pos.totalCost = pos.totalCost.Add(tx.Quantity.Mul(tx.TradePrice))
			pos.avgBuyPrice = pos.totalCost.Div(pos.totalQuantity)
			pos.currency = tx.Currency
			pos.exchange = tx.Exchange
			pos.country = tx.Country
		case Sell:
			pos := positions[tx.Ticker]
			if pos == nil {
				if strict {
					return nil, fmt.Errorf("%s on %s: %w", tx.Ticker, tx.Date.Format("2006-01-02"), ErrOversell)
				}
				// No tracked position to sell from: a degenerate no-op.
				continue
			}
			if strict && pos.totalQuantity.LessThan(tx.Quantity) {
				return nil, fmt.Errorf("%s on %s: %w", tx.Ticker, tx.Date.Format("2006-01-02"), ErrOversell)
			}
			pos.totalQuantity = pos.totalQuantity.Sub(tx.Quantity)
			pos.totalCost = pos.totalCost.Sub(tx.Quantity.Mul(pos.avgBuyPrice))
			// The average is unchanged by a sell: quantity and cost shrink
			// proportionally, so there is nothing to recompute here.
			if !pos.totalQuantity.IsPositive() {
				delete(positions, tx.Ticker)
			}
		}
	}

	tickers := make([]string, 0, len(positions))
	for ticker := range positions {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	holdings := make([]Holding, 0, len(positions))
	var totalValue decimal.Decimal
	for _, ticker := range tickers {
		pos := positions[ticker]

		price, ok := decimal.Decimal{}, false
		if prices != nil {
			price, ok = prices.Price(ticker)
		}
		if !ok {
			// Degrade gracefully: without a quote the position is valued at
			// cost and its paper P&L reads zero.
			price = pos.avgBuyPrice
		}

		value := pos.totalQuantity.Mul(price)
		h := Holding{
			Ticker:        ticker,
			Quantity:      pos.totalQuantity,
			AvgBuyPrice:   pos.avgBuyPrice,
			InvestedValue: pos.totalCost,
			CurrentPrice:  price,
			CurrentValue:  value,
			UnrealizedPL:  value.Sub(pos.totalCost),
			Currency:      pos.currency,
			Exchange:      pos.exchange,
			Country:       pos.country,
		}
		if !pos.totalCost.IsZero() {
			h.UnrealizedPLPercent = h.UnrealizedPL.Div(pos.totalCost).Mul(hundred)
		}
		totalValue = totalValue.Add(value)
		holdings = append(holdings, h)
	}

	// Allocations need the grand total, so they are a second pass.
	if !totalValue.IsZero() {
		for i := range holdings {
			holdings[i].Allocation = holdings[i].CurrentValue.Div(totalValue).Mul(hundred)
		}
	}
	return holdings, nil
}

// chronological returns the portfolio's transactions sorted by date
// ascending. The sort is stable, so same-day transactions keep their input
// order, and the input slice itself is never modified. An empty portfolioID
// matches every portfolio.
func chronological(txs []Transaction, portfolioID string) []Transaction {
	ordered := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if portfolioID == "" || tx.PortfolioID == portfolioID {
			ordered = append(ordered, tx)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})
	return ordered
}
