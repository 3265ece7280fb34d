package folio

import (
	"errors"
	"reflect"
	"testing"
)

func TestComputeHoldings_WeightedAverage(t *testing.T) {
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 10, 100),
		buyTx("main", "AAPL", 2, 5, 130),
	}

	holdings := ComputeHoldings(txs, "main", nil)
	h := holdingFor(t, holdings, "AAPL")

	wantDec(t, "Quantity", h.Quantity, 15)
	wantDec(t, "InvestedValue", h.InvestedValue, 1650)
	wantDec(t, "AvgBuyPrice", h.AvgBuyPrice, 110)
}

func TestComputeHoldings_SellKeepsAverageCost(t *testing.T) {
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 10, 100),
		buyTx("main", "AAPL", 2, 10, 200),
		sellTx("main", "AAPL", 3, 5, 250, 0),
	}

	holdings := ComputeHoldings(txs, "main", StaticPrices{"AAPL": dec(160)})
	h := holdingFor(t, holdings, "AAPL")

	// A sell shrinks quantity and cost proportionally, the blend stays 150.
	wantDec(t, "Quantity", h.Quantity, 15)
	wantDec(t, "AvgBuyPrice", h.AvgBuyPrice, 150)
	wantDec(t, "InvestedValue", h.InvestedValue, 2250)
	wantDec(t, "CurrentValue", h.CurrentValue, 2400)
	wantDec(t, "UnrealizedPL", h.UnrealizedPL, 150)
	wantClose(t, "UnrealizedPLPercent", h.UnrealizedPLPercent, 100.0*150/2250)
}

func TestComputeHoldings_FeesExcludedFromCostBasis(t *testing.T) {
	tx := buyTx("main", "AAPL", 1, 10, 100)
	tx.Fees = dec(25)

	h := holdingFor(t, ComputeHoldings([]Transaction{tx}, "main", nil), "AAPL")
	wantDec(t, "InvestedValue", h.InvestedValue, 1000)
	wantDec(t, "AvgBuyPrice", h.AvgBuyPrice, 100)
}

func TestComputeHoldings_QuantityConservation(t *testing.T) {
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 10, 100),
		sellTx("main", "AAPL", 2, 3, 110, 0),
		buyTx("main", "AAPL", 3, 7, 120),
		sellTx("main", "AAPL", 4, 4, 130, 1),
	}

	h := holdingFor(t, ComputeHoldings(txs, "main", nil), "AAPL")
	wantDec(t, "Quantity", h.Quantity, 10+7-3-4)
}

func TestComputeHoldings_AllocationSumsToHundred(t *testing.T) {
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 10, 100),
		buyTx("main", "GOOG", 1, 3, 700),
		buyTx("main", "MSFT", 2, 7, 310),
	}
	prices := StaticPrices{"AAPL": dec(113), "GOOG": dec(689), "MSFT": dec(333)}

	holdings := ComputeHoldings(txs, "main", prices)
	if len(holdings) != 3 {
		t.Fatalf("len(holdings) = %d, want 3", len(holdings))
	}
	var total float64
	for _, h := range holdings {
		total += h.Allocation.InexactFloat64()
	}
	if total < 100-1e-6 || total > 100+1e-6 {
		t.Errorf("sum of allocations = %v, want 100", total)
	}
}

func TestComputeHoldings_Idempotent(t *testing.T) {
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 10, 100),
		sellTx("main", "AAPL", 2, 4, 120, 2),
		buyTx("main", "GOOG", 1, 2, 700),
	}
	prices := StaticPrices{"AAPL": dec(105)}

	first := ComputeHoldings(txs, "main", prices)
	second := ComputeHoldings(txs, "main", prices)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated replay differs:\n%v\n%v", first, second)
	}
}

func TestComputeHoldings_OversellDeletesPosition(t *testing.T) {
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 5, 100),
		sellTx("main", "AAPL", 2, 10, 110, 0),
		buyTx("main", "GOOG", 1, 2, 700),
	}

	holdings := ComputeHoldings(txs, "main", nil)
	if hasHolding(holdings, "AAPL") {
		t.Errorf("oversold AAPL position should be deleted, got %v", holdings)
	}
	if !hasHolding(holdings, "GOOG") {
		t.Errorf("GOOG position should survive, got %v", holdings)
	}
}

func TestComputeHoldings_SellWithoutBuy(t *testing.T) {
	txs := []Transaction{sellTx("main", "AAPL", 1, 10, 110, 0)}

	if holdings := ComputeHoldings(txs, "main", nil); len(holdings) != 0 {
		t.Errorf("ComputeHoldings() = %v, want no holdings", holdings)
	}
}

func TestComputeHoldings_MissingPriceFallback(t *testing.T) {
	txs := []Transaction{buyTx("main", "AAPL", 1, 10, 50)}

	h := holdingFor(t, ComputeHoldings(txs, "main", StaticPrices{}), "AAPL")
	wantDec(t, "CurrentPrice", h.CurrentPrice, 50)
	wantDec(t, "CurrentValue", h.CurrentValue, 500)
	wantDec(t, "UnrealizedPL", h.UnrealizedPL, 0)
	wantDec(t, "UnrealizedPLPercent", h.UnrealizedPLPercent, 0)
}

func TestComputeHoldings_Empty(t *testing.T) {
	if holdings := ComputeHoldings(nil, "main", nil); len(holdings) != 0 {
		t.Errorf("ComputeHoldings(nil) = %v, want empty", holdings)
	}
}

func TestComputeHoldings_OrdersByDateNotByInput(t *testing.T) {
	// The sell predates nothing: stored order has it first, but the replay
	// must process the earlier buy before it.
	txs := []Transaction{
		sellTx("main", "AAPL", 2, 4, 120, 0),
		buyTx("main", "AAPL", 1, 10, 100),
	}

	h := holdingFor(t, ComputeHoldings(txs, "main", nil), "AAPL")
	wantDec(t, "Quantity", h.Quantity, 6)
}

func TestComputeHoldings_SameDayKeepsInputOrder(t *testing.T) {
	// Same-date transactions are processed in their input order: a buy and a
	// full sell on one day cancel out, but a sell arriving before the buy is
	// a no-op and leaves the buy standing.
	buy := buyTx("main", "AAPL", 1, 10, 100)
	sell := sellTx("main", "AAPL", 1, 10, 110, 0)

	if holdings := ComputeHoldings([]Transaction{buy, sell}, "main", nil); len(holdings) != 0 {
		t.Errorf("buy-then-sell on one day = %v, want no holdings", holdings)
	}

	h := holdingFor(t, ComputeHoldings([]Transaction{sell, buy}, "main", nil), "AAPL")
	wantDec(t, "Quantity", h.Quantity, 10)
}

func TestComputeHoldings_InputUntouched(t *testing.T) {
	txs := []Transaction{
		sellTx("main", "AAPL", 2, 4, 120, 0),
		buyTx("main", "AAPL", 1, 10, 100),
	}

	ComputeHoldings(txs, "main", nil)
	if txs[0].Action != Sell || txs[1].Action != Buy {
		t.Error("replay reordered its input slice")
	}
}

func TestComputeHoldings_FiltersByPortfolio(t *testing.T) {
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 10, 100),
		buyTx("side", "AAPL", 1, 3, 100),
		buyTx("side", "GOOG", 1, 2, 700),
	}

	holdings := ComputeHoldings(txs, "main", nil)
	if len(holdings) != 1 {
		t.Fatalf("len(holdings) = %d, want 1", len(holdings))
	}
	wantDec(t, "Quantity", holdings[0].Quantity, 10)

	// An empty portfolio replays everything, merging positions by ticker.
	all := ComputeHoldings(txs, "", nil)
	wantDec(t, "merged AAPL quantity", holdingFor(t, all, "AAPL").Quantity, 13)
}

func TestComputeHoldings_MetadataCarried(t *testing.T) {
	tx := buyTx("main", "SAP", 1, 10, 120)
	tx.Currency = "EUR"
	tx.Exchange = "XETRA"
	tx.Country = "Germany"

	h := holdingFor(t, ComputeHoldings([]Transaction{tx}, "main", nil), "SAP")
	if h.Currency != "EUR" || h.Exchange != "XETRA" || h.Country != "Germany" {
		t.Errorf("metadata not carried: %+v", h)
	}
}

func TestComputeHoldingsStrict_Oversell(t *testing.T) {
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 5, 100),
		sellTx("main", "AAPL", 2, 10, 110, 0),
	}

	if _, err := ComputeHoldingsStrict(txs, "main", nil); !errors.Is(err, ErrOversell) {
		t.Errorf("ComputeHoldingsStrict() error = %v, want ErrOversell", err)
	}

	// A clean ledger passes and matches the lenient replay.
	clean := []Transaction{
		buyTx("main", "AAPL", 1, 10, 100),
		sellTx("main", "AAPL", 2, 5, 110, 0),
	}
	holdings, err := ComputeHoldingsStrict(clean, "main", nil)
	if err != nil {
		t.Fatalf("ComputeHoldingsStrict() error = %v", err)
	}
	if !reflect.DeepEqual(holdings, ComputeHoldings(clean, "main", nil)) {
		t.Error("strict and lenient replays disagree on a clean ledger")
	}
}
