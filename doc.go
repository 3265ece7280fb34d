// Package folio tracks personal investment portfolios from a flat ledger of
// buy and sell transactions.
//
// The ledger is the single source of truth: every figure is recomputed from
// it on demand by two independent, pure replays. ComputeHoldings values the
// open positions with a weighted-average cost basis, while ComputeRealizedPL
// locks in gains from sells using strict FIFO lot matching. The two methods
// coexist on purpose, because a dashboard displays both figures
// independently; unifying them would silently change reported numbers.
//
// Persistence is plain JSONL files in a data directory, each opened by a
// schema-versioned loader. Quotes and exchange rates are pluggable lookups,
// so the engine stays indifferent to where market data comes from.
package folio
