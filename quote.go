package folio

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// PriceLookup supplies the current price of a ticker in its native currency.
// Absence of a price is a valid, expected condition (a provider outage, an
// unlisted security); consumers degrade gracefully rather than fail.
type PriceLookup interface {
	Price(ticker string) (decimal.Decimal, bool)
}

// StaticPrices is a fixed, in-memory price table.
type StaticPrices map[string]decimal.Decimal

func (p StaticPrices) Price(ticker string) (decimal.Decimal, bool) {
	price, ok := p[ticker]
	return price, ok
}

// Chain tries each lookup in turn and returns the first price found. It is
// the composition point for multi-source quote providers: put the preferred
// source first and the fallbacks after it.
type Chain []PriceLookup

func (c Chain) Price(ticker string) (decimal.Decimal, bool) {
	for _, lookup := range c {
		if price, ok := lookup.Price(ticker); ok {
			return price, ok
		}
	}
	return decimal.Decimal{}, false
}

// cachedQuote remembers one source answer, hit or miss.
type cachedQuote struct {
	price   decimal.Decimal
	ok      bool
	fetched time.Time
}

// CachedPrices decorates a PriceLookup with a TTL cache. Both hits and
// misses are cached, so a failing source is not hammered on every call.
//
// The cache is an explicit value to be passed where it is needed, never a
// package-level singleton: its lifetime and invalidation stay visible and
// testable. It is safe for concurrent use.
type CachedPrices struct {
	source PriceLookup
	ttl    time.Duration
	now    func() time.Time

	mu     sync.Mutex
	quotes map[string]cachedQuote
}

// NewCachedPrices wraps source with a cache whose entries expire after ttl.
func NewCachedPrices(source PriceLookup, ttl time.Duration) *CachedPrices {
	return &CachedPrices{
		source: source,
		ttl:    ttl,
		now:    time.Now,
		quotes: make(map[string]cachedQuote),
	}
}

func (c *CachedPrices) Price(ticker string) (decimal.Decimal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if q, ok := c.quotes[ticker]; ok && c.now().Sub(q.fetched) < c.ttl {
		return q.price, q.ok
	}
	price, ok := c.source.Price(ticker)
	c.quotes[ticker] = cachedQuote{price: price, ok: ok, fetched: c.now()}
	return price, ok
}

// Evict drops the cached quote for one ticker, forcing the next Price call
// through to the source.
func (c *CachedPrices) Evict(ticker string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.quotes, ticker)
}

// Clear drops every cached quote.
func (c *CachedPrices) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quotes = make(map[string]cachedQuote)
}

// RateLookup supplies the value of one unit of a foreign currency expressed
// in the report currency. As with prices, a missing rate is an expected
// condition.
type RateLookup interface {
	Rate(currency string) (decimal.Decimal, bool)
}

// StaticRates is a fixed rate table keyed by currency code.
type StaticRates map[string]decimal.Decimal

func (r StaticRates) Rate(currency string) (decimal.Decimal, bool) {
	rate, ok := r[currency]
	return rate, ok
}
