package folio

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Action identifies the side of a trade.
type Action int

const (
	// Buy acquires a new tranche of a security.
	Buy Action = iota
	// Sell disposes of previously acquired quantity.
	Sell
)

func (a Action) String() string {
	switch a {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "unknown"
	}
}

// ParseAction parses a string into an Action.
func ParseAction(s string) (Action, error) {
	switch strings.ToUpper(s) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown action: %q", s)
	}
}

// Transaction records a single buy or sell of a security within a portfolio.
//
// A transaction is immutable once appended to a ledger: the replay engines
// only ever read it. Currency, Exchange and Country are descriptive metadata
// carried through to the resulting holding; they take no part in arithmetic.
type Transaction struct {
	ID          string
	PortfolioID string
	Date        time.Time
	Action      Action
	Ticker      string
	Quantity    decimal.Decimal // number of units traded
	TradePrice  decimal.Decimal // price per unit, in the transaction's own currency
	Fees        decimal.Decimal // charged once per transaction, excluded from the cost basis
	Currency    string
	Exchange    string
	Country     string
}

// NewBuy creates a buy transaction.
func NewBuy(portfolioID string, day time.Time, ticker string, quantity, price decimal.Decimal) Transaction {
	return Transaction{
		PortfolioID: portfolioID,
		Date:        day,
		Action:      Buy,
		Ticker:      ticker,
		Quantity:    quantity,
		TradePrice:  price,
	}
}

// NewSell creates a sell transaction.
func NewSell(portfolioID string, day time.Time, ticker string, quantity, price decimal.Decimal) Transaction {
	return Transaction{
		PortfolioID: portfolioID,
		Date:        day,
		Action:      Sell,
		Ticker:      ticker,
		Quantity:    quantity,
		TradePrice:  price,
	}
}

// Validate checks a transaction for correctness at creation time.
//
// The replay engines assume their input already went through this check and
// never validate again; malformed quantities or prices that sneak past it are
// a precondition violation, not a replay error.
func (t Transaction) Validate() error {
	if t.PortfolioID == "" {
		return errors.New("transaction portfolio is missing")
	}
	if t.Ticker == "" {
		return errors.New("transaction ticker is missing")
	}
	if t.Date.IsZero() {
		return errors.New("transaction date is missing")
	}
	if t.Action != Buy && t.Action != Sell {
		return fmt.Errorf("unknown transaction action: %d", t.Action)
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("transaction quantity must be positive, got %s", t.Quantity)
	}
	if !t.TradePrice.IsPositive() {
		return fmt.Errorf("transaction price must be positive, got %s", t.TradePrice)
	}
	if t.Fees.IsNegative() {
		return fmt.Errorf("transaction fees must not be negative, got %s", t.Fees)
	}
	return nil
}

// Equal reports whether two transactions describe the same trade.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.PortfolioID == o.PortfolioID &&
		t.Date.Equal(o.Date) &&
		t.Action == o.Action &&
		t.Ticker == o.Ticker &&
		t.Quantity.Equal(o.Quantity) &&
		t.TradePrice.Equal(o.TradePrice) &&
		t.Fees.Equal(o.Fees) &&
		t.Currency == o.Currency &&
		t.Exchange == o.Exchange &&
		t.Country == o.Country
}
