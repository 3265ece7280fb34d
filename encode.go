package folio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// SchemaVersion is the ledger file format version this package reads and
// writes. The first line of every data file declares the version it was
// written with, so the loader can refuse files from a newer format instead
// of misreading them.
const SchemaVersion = 1

// ErrUnknownSchema reports a data file written with a schema version this
// package does not understand.
var ErrUnknownSchema = errors.New("unknown schema version")

// schemaHeader is the first line of every data file.
type schemaHeader struct {
	Folio int `json:"folio"`
}

func writeSchemaHeader(w io.Writer) error {
	data, err := json.Marshal(schemaHeader{Folio: SchemaVersion})
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// readSchemaHeader consumes the header line from a scanner. An empty stream
// is tolerated and reported as such, so a missing file and an empty file
// both decode to an empty collection.
func readSchemaHeader(scanner *bufio.Scanner) (empty bool, err error) {
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var header schemaHeader
		if err := json.Unmarshal(line, &header); err != nil || header.Folio == 0 {
			return false, fmt.Errorf("missing schema header in line %q: %w", string(line), ErrUnknownSchema)
		}
		if header.Folio != SchemaVersion {
			return false, fmt.Errorf("schema version %d: %w", header.Folio, ErrUnknownSchema)
		}
		return false, nil
	}
	return true, scanner.Err()
}

// txRecord is the serializable form of a Transaction. It is the only shape
// that touches disk: the engine types stay isolated from format changes.
type txRecord struct {
	ID         string          `json:"id"`
	Portfolio  string          `json:"portfolio"`
	Date       time.Time       `json:"date"`
	Action     string          `json:"action"`
	Ticker     string          `json:"ticker"`
	Quantity   decimal.Decimal `json:"quantity"`
	TradePrice decimal.Decimal `json:"price"`
	Fees       decimal.Decimal `json:"fees"`
	Currency   string          `json:"currency,omitempty"`
	Exchange   string          `json:"exchange,omitempty"`
	Country    string          `json:"country,omitempty"`
}

func newTxRecord(t Transaction) txRecord {
	return txRecord{
		ID:         t.ID,
		Portfolio:  t.PortfolioID,
		Date:       t.Date,
		Action:     t.Action.String(),
		Ticker:     t.Ticker,
		Quantity:   t.Quantity,
		TradePrice: t.TradePrice,
		Fees:       t.Fees,
		Currency:   t.Currency,
		Exchange:   t.Exchange,
		Country:    t.Country,
	}
}

func (r txRecord) transaction() (Transaction, error) {
	action, err := ParseAction(r.Action)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		ID:          r.ID,
		PortfolioID: r.Portfolio,
		Date:        r.Date,
		Action:      action,
		Ticker:      r.Ticker,
		Quantity:    r.Quantity,
		TradePrice:  r.TradePrice,
		Fees:        r.Fees,
		Currency:    r.Currency,
		Exchange:    r.Exchange,
		Country:     r.Country,
	}, nil
}

// DecodeLedger decodes a ledger from a stream of JSONL data. The first line
// must carry the schema version; each following line is one transaction.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	empty, err := readSchemaHeader(scanner)
	if err != nil {
		return nil, err
	}
	if empty {
		return ledger, nil
	}

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec txRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not decode transaction line %q: %w", string(line), err)
		}
		tx, err := rec.transaction()
		if err != nil {
			return nil, fmt.Errorf("could not decode transaction line %q: %w", string(line), err)
		}
		ledger.transactions = append(ledger.transactions, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}

	ledger.stableSort()
	return ledger, nil
}

// EncodeTransaction marshals a single transaction and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(newTxRecord(tx))
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger reorders transactions by date and persists them to an
// io.Writer in JSONL format, schema header first. The sort is stable, so
// transactions on the same day keep their original relative order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	if err := writeSchemaHeader(w); err != nil {
		return fmt.Errorf("failed to write schema header: %w", err)
	}
	ledger.stableSort()
	for _, tx := range ledger.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
