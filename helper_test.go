package folio

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// dec builds a decimal from a float for test fixtures.
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// day builds a date in March 2025; transaction ordering in tests only needs
// relative days.
func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func buyTx(portfolio, ticker string, d int, quantity, price float64) Transaction {
	tx := NewBuy(portfolio, day(d), ticker, dec(quantity), dec(price))
	tx.Currency = "USD"
	return tx
}

func sellTx(portfolio, ticker string, d int, quantity, price, fees float64) Transaction {
	tx := NewSell(portfolio, day(d), ticker, dec(quantity), dec(price))
	tx.Fees = dec(fees)
	tx.Currency = "USD"
	return tx
}

// holdingFor finds the holding of one ticker in a result set, failing the
// test when it is absent.
func holdingFor(t *testing.T, holdings []Holding, ticker string) Holding {
	t.Helper()
	for _, h := range holdings {
		if h.Ticker == ticker {
			return h
		}
	}
	t.Fatalf("no holding for %s in %v", ticker, holdings)
	return Holding{}
}

func hasHolding(holdings []Holding, ticker string) bool {
	for _, h := range holdings {
		if h.Ticker == ticker {
			return true
		}
	}
	return false
}

// wantDec asserts exact decimal equality against a float fixture.
func wantDec(t *testing.T, label string, got decimal.Decimal, want float64) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %v", label, got, want)
	}
}

// wantClose asserts decimal equality within a small tolerance, for derived
// figures like percentages where division precision is bounded.
func wantClose(t *testing.T, label string, got decimal.Decimal, want float64) {
	t.Helper()
	if math.Abs(got.InexactFloat64()-want) > 1e-6 {
		t.Errorf("%s = %s, want %v", label, got, want)
	}
}
