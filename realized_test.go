package folio

import (
	"errors"
	"testing"
)

func TestComputeRealizedPL_FIFOAcrossLots(t *testing.T) {
	// The sell of 12 consumes the whole first lot and 2 units of the second:
	// (12*110) - (10*100 + 2*120) - 2 = 78.
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 10, 100),
		buyTx("main", "AAPL", 2, 5, 120),
		sellTx("main", "AAPL", 3, 12, 110, 2),
	}

	wantDec(t, "RealizedPL", ComputeRealizedPL(txs, "main"), 78)
}

func TestComputeRealizedPL_FeeOncePerMultiLotSell(t *testing.T) {
	// One sell spanning three lots pays its fee once, not three times.
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 2, 10),
		buyTx("main", "AAPL", 2, 2, 20),
		buyTx("main", "AAPL", 3, 2, 30),
		sellTx("main", "AAPL", 4, 6, 40, 5),
	}

	wantDec(t, "RealizedPL", ComputeRealizedPL(txs, "main"), 6*40-(2*10+2*20+2*30)-5)
}

func TestComputeRealizedPL_OversellMatchesOnlyEnqueued(t *testing.T) {
	// Only the 5 enqueued units count; the unmatched remainder is dropped.
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 5, 100),
		sellTx("main", "AAPL", 2, 10, 110, 1),
	}

	wantDec(t, "RealizedPL", ComputeRealizedPL(txs, "main"), 5*110-5*100-1)
}

func TestComputeRealizedPL_SellWithNoLots(t *testing.T) {
	txs := []Transaction{sellTx("main", "AAPL", 1, 10, 110, 3)}

	wantDec(t, "RealizedPL", ComputeRealizedPL(txs, "main"), 0)
}

func TestComputeRealizedPL_BuysNeverRealize(t *testing.T) {
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 10, 100),
		buyTx("main", "GOOG", 2, 5, 700),
	}

	wantDec(t, "RealizedPL", ComputeRealizedPL(txs, "main"), 0)
}

func TestComputeRealizedPL_SequentialSells(t *testing.T) {
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 10, 100),
		sellTx("main", "AAPL", 2, 4, 120, 0),
		sellTx("main", "AAPL", 3, 6, 130, 0),
	}

	wantDec(t, "RealizedPL", ComputeRealizedPL(txs, "main"), 4*20+6*30)
}

func TestComputeRealizedPL_AcrossPortfolios(t *testing.T) {
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 10, 100),
		sellTx("main", "AAPL", 2, 10, 105, 0), // +50
		buyTx("side", "GOOG", 1, 3, 700),
		sellTx("side", "GOOG", 2, 3, 710, 0), // +30
	}

	wantDec(t, "main", ComputeRealizedPL(txs, "main"), 50)
	wantDec(t, "side", ComputeRealizedPL(txs, "side"), 30)
	wantDec(t, "all", ComputeRealizedPL(txs, ""), 80)
}

func TestComputeRealizedPL_LotsNeverCrossPortfolios(t *testing.T) {
	// The side portfolio holds AAPL, but a sell in main cannot consume it.
	txs := []Transaction{
		buyTx("side", "AAPL", 1, 10, 100),
		sellTx("main", "AAPL", 2, 10, 150, 0),
	}

	wantDec(t, "RealizedPL", ComputeRealizedPL(txs, ""), 0)
}

func TestComputeRealizedPL_SortsByDate(t *testing.T) {
	txs := []Transaction{
		sellTx("main", "AAPL", 3, 5, 120, 0),
		buyTx("main", "AAPL", 1, 5, 100),
	}

	wantDec(t, "RealizedPL", ComputeRealizedPL(txs, "main"), 100)
}

func TestComputeRealizedPL_SameDayKeepsInputOrder(t *testing.T) {
	// The stable sort keeps same-date transactions in input order, so the
	// sell only finds a lot to consume when the buy precedes it.
	buy := buyTx("main", "AAPL", 1, 10, 100)
	sell := sellTx("main", "AAPL", 1, 10, 110, 0)

	wantDec(t, "buy first", ComputeRealizedPL([]Transaction{buy, sell}, "main"), 100)
	wantDec(t, "sell first", ComputeRealizedPL([]Transaction{sell, buy}, "main"), 0)
}

func TestComputeRealizedPL_Empty(t *testing.T) {
	wantDec(t, "RealizedPL", ComputeRealizedPL(nil, "main"), 0)
}

func TestComputeRealizedPLStrict_Oversell(t *testing.T) {
	txs := []Transaction{
		buyTx("main", "AAPL", 1, 5, 100),
		sellTx("main", "AAPL", 2, 10, 110, 0),
	}

	if _, err := ComputeRealizedPLStrict(txs, "main"); !errors.Is(err, ErrOversell) {
		t.Errorf("ComputeRealizedPLStrict() error = %v, want ErrOversell", err)
	}

	clean := []Transaction{
		buyTx("main", "AAPL", 1, 10, 100),
		sellTx("main", "AAPL", 2, 5, 110, 0),
	}
	realized, err := ComputeRealizedPLStrict(clean, "main")
	if err != nil {
		t.Fatalf("ComputeRealizedPLStrict() error = %v", err)
	}
	wantDec(t, "RealizedPL", realized, 50)
}

func TestLotQueue_Consume(t *testing.T) {
	var q lotQueue
	q = q.push(dec(10), dec(100))
	q = q.push(dec(5), dec(120))

	costBasis, matched, rest := q.consume(dec(12))
	wantDec(t, "costBasis", costBasis, 10*100+2*120)
	wantDec(t, "matched", matched, 12)
	wantDec(t, "remaining", rest.remaining(), 3)

	// Draining the rest leaves an empty queue.
	_, matched, rest = rest.consume(dec(99))
	wantDec(t, "matched", matched, 3)
	if len(rest) != 0 {
		t.Errorf("queue not drained: %v", rest)
	}
}
