package folio

import (
	"testing"
	"time"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in      string
		want    Action
		wantErr bool
	}{
		{"BUY", Buy, false},
		{"SELL", Sell, false},
		{"buy", Buy, false},
		{"sell", Sell, false},
		{"hold", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAction(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAction(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTransaction_Validate(t *testing.T) {
	valid := buyTx("main", "AAPL", 1, 10, 100)
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on a valid transaction = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"missing portfolio", func(tx *Transaction) { tx.PortfolioID = "" }},
		{"missing ticker", func(tx *Transaction) { tx.Ticker = "" }},
		{"missing date", func(tx *Transaction) { tx.Date = time.Time{} }},
		{"zero quantity", func(tx *Transaction) { tx.Quantity = dec(0) }},
		{"negative quantity", func(tx *Transaction) { tx.Quantity = dec(-1) }},
		{"zero price", func(tx *Transaction) { tx.TradePrice = dec(0) }},
		{"negative price", func(tx *Transaction) { tx.TradePrice = dec(-5) }},
		{"negative fees", func(tx *Transaction) { tx.Fees = dec(-1) }},
		{"unknown action", func(tx *Transaction) { tx.Action = Action(42) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			if err := tx.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}

func TestTransaction_Equal(t *testing.T) {
	a := buyTx("main", "AAPL", 1, 10, 100)
	b := a
	if !a.Equal(b) {
		t.Error("identical transactions reported unequal")
	}
	b.Quantity = dec(11)
	if a.Equal(b) {
		t.Error("different quantities reported equal")
	}
}
