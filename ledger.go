package folio

import (
	"iter"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger holds the recorded transactions of every portfolio.
//
// In a Ledger transactions are always in chronological order. The ledger owns
// transaction identity: it assigns an identifier to any transaction appended
// without one. The replay engines never mutate it.
type Ledger struct {
	name         string
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Name returns the ledger's name, its file path relative to the data
// directory without the .jsonl extension.
func (l *Ledger) Name() string { return l.name }

// SetName renames the ledger. The name decides where SaveLedger writes it.
func (l *Ledger) SetName(name string) { l.name = name }

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append adds transactions to the ledger and maintains the chronological
// order. A transaction without an ID gets a fresh one assigned.
func (l *Ledger) Append(txs ...Transaction) {
	for _, tx := range txs {
		if tx.ID == "" {
			tx.ID = uuid.NewString()
		}
		l.transactions = append(l.transactions, tx)
	}
	l.stableSort()
}

// All returns a copy of the ledger's transactions in chronological order.
func (l *Ledger) All() []Transaction {
	txs := make([]Transaction, len(l.transactions))
	copy(txs, l.transactions)
	return txs
}

// Transactions returns an iterator over the ledger's transactions, in
// chronological order, keeping only those accepted by every filter.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
	next:
		for i, tx := range l.transactions {
			for _, filter := range filters {
				if !filter(tx) {
					continue next
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Portfolios returns an iterator over the unique portfolio identifiers
// present in the ledger, in lexical order.
func (l *Ledger) Portfolios() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		var ids []string
		for _, tx := range l.transactions {
			if _, ok := seen[tx.PortfolioID]; !ok {
				seen[tx.PortfolioID] = struct{}{}
				ids = append(ids, tx.PortfolioID)
			}
		}
		sort.Strings(ids)
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}

// Tickers returns an iterator over the unique tickers traded by a portfolio,
// in lexical order. An empty portfolioID covers every portfolio.
func (l *Ledger) Tickers(portfolioID string) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		var tickers []string
		for _, tx := range l.transactions {
			if portfolioID != "" && tx.PortfolioID != portfolioID {
				continue
			}
			if _, ok := seen[tx.Ticker]; !ok {
				seen[tx.Ticker] = struct{}{}
				tickers = append(tickers, tx.Ticker)
			}
		}
		sort.Strings(tickers)
		for _, ticker := range tickers {
			if !yield(ticker) {
				return
			}
		}
	}
}

// Holdings replays the ledger for one portfolio and returns its open
// positions. See ComputeHoldings.
func (l *Ledger) Holdings(portfolioID string, prices PriceLookup) []Holding {
	return ComputeHoldings(l.transactions, portfolioID, prices)
}

// RealizedPL replays the ledger and returns the FIFO realized profit for one
// portfolio, or for all of them when portfolioID is empty. See
// ComputeRealizedPL.
func (l *Ledger) RealizedPL(portfolioID string) decimal.Decimal {
	return ComputeRealizedPL(l.transactions, portfolioID)
}

// stableSort sorts the ledger by transaction date. The sort is stable, so
// transactions on the same day keep their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// ByPortfolio returns a predicate that filters transactions by portfolio.
func ByPortfolio(portfolioID string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.PortfolioID == portfolioID }
}

// ByTicker returns a predicate that filters transactions by ticker.
func ByTicker(ticker string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Ticker == ticker }
}

// ByAction returns a predicate that filters transactions by action.
func ByAction(action Action) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Action == action }
}
