package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// lotKey identifies one FIFO queue: lots never match across portfolios, even
// for the same ticker.
type lotKey struct {
	portfolio string
	ticker    string
}

// ComputeRealizedPL replays transactions in chronological order and returns
// the total profit locked in by sells, matched against buy lots strictly
// first-in-first-out.
//
// This is intentionally a second, independent replay next to ComputeHoldings:
// open positions are valued with a weighted-average cost while realized gains
// use FIFO lot matching. Both figures are consumed independently, so the two
// methods must not be unified.
//
// Fees are subtracted exactly once per sell transaction, even when a single
// sell spans several lots. A sell exceeding all enqueued lots stops matching
// when the queue empties; the unmatched remainder is dropped from the
// accounting. An empty portfolioID aggregates across every portfolio present
// in txs.
func ComputeRealizedPL(txs []Transaction, portfolioID string) decimal.Decimal {
	realized, _ := replayRealized(txs, portfolioID, false)
	return realized
}

// ComputeRealizedPLStrict is ComputeRealizedPL with oversell checking: a sell
// that cannot be fully matched against enqueued lots returns ErrOversell.
func ComputeRealizedPLStrict(txs []Transaction, portfolioID string) (decimal.Decimal, error) {
	return replayRealized(txs, portfolioID, true)
}

func replayRealized(txs []Transaction, portfolioID string, strict bool) (decimal.Decimal, error) {
	var realized decimal.Decimal
	queues := make(map[lotKey]lotQueue)

	for _, tx := range chronological(txs, portfolioID) {
		key := lotKey{portfolio: tx.PortfolioID, ticker: tx.Ticker}
		switch tx.Action {
		case Buy:
			queues[key] = queues[key].push(tx.Quantity, tx.TradePrice)
		case Sell:
			costBasis, matched, rest := queues[key].consume(tx.Quantity)
			if strict && matched.LessThan(tx.Quantity) {
				return decimal.Decimal{}, fmt.Errorf("%s on %s: %w", tx.Ticker, tx.Date.Format("2006-01-02"), ErrOversell)
			}
			queues[key] = rest
			if matched.IsPositive() {
				proceeds := matched.Mul(tx.TradePrice)
				// Fees come off once per sell, not once per matched lot.
				realized = realized.Add(proceeds.Sub(costBasis).Sub(tx.Fees))
			}
		}
	}
	return realized, nil
}
