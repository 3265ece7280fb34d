package folio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"
)

// priceRecord is the serializable form of one quoted price.
type priceRecord struct {
	Ticker string          `json:"ticker"`
	Price  decimal.Decimal `json:"price"`
}

// DecodePrices decodes a price table from a stream of JSONL data, schema
// header first.
func DecodePrices(r io.Reader) (StaticPrices, error) {
	prices := make(StaticPrices)
	scanner := bufio.NewScanner(r)

	empty, err := readSchemaHeader(scanner)
	if err != nil {
		return nil, err
	}
	if empty {
		return prices, nil
	}

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec priceRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not decode price line %q: %w", string(line), err)
		}
		if rec.Ticker == "" {
			return nil, fmt.Errorf("price line %q has no ticker", string(line))
		}
		prices[rec.Ticker] = rec.Price
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading prices: %w", err)
	}
	return prices, nil
}

// EncodePrices persists a price table in JSONL format, schema header first,
// one price per line in ticker order.
func EncodePrices(w io.Writer, prices StaticPrices) error {
	if err := writeSchemaHeader(w); err != nil {
		return fmt.Errorf("failed to write schema header: %w", err)
	}
	tickers := make([]string, 0, len(prices))
	for ticker := range prices {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	for _, ticker := range tickers {
		data, err := json.Marshal(priceRecord{Ticker: ticker, Price: prices[ticker]})
		if err != nil {
			return fmt.Errorf("failed to marshal price for %q: %w", ticker, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write price for %q: %w", ticker, err)
		}
	}
	return nil
}

// ratePair identifies one directed currency conversion.
type ratePair struct {
	From string
	To   string
}

// RateTable stores exchange rates between currency pairs: the value of one
// unit of From expressed in To.
type RateTable struct {
	rates map[ratePair]decimal.Decimal
}

// NewRateTable returns a new empty rate table.
func NewRateTable() *RateTable {
	return &RateTable{rates: make(map[ratePair]decimal.Decimal)}
}

// Set records the value of one unit of from expressed in to, replacing any
// previous rate for the pair.
func (t *RateTable) Set(from, to string, rate decimal.Decimal) {
	t.rates[ratePair{From: from, To: to}] = rate
}

// Get returns the recorded rate for a pair. The identity rate is always
// known.
func (t *RateTable) Get(from, to string) (decimal.Decimal, bool) {
	if from == to {
		return decimal.NewFromInt(1), true
	}
	rate, ok := t.rates[ratePair{From: from, To: to}]
	return rate, ok
}

// For projects the table onto a single report currency, yielding the
// RateLookup the dashboard consumes.
func (t *RateTable) For(reportCurrency string) StaticRates {
	rates := make(StaticRates)
	for pair, rate := range t.rates {
		if pair.To == reportCurrency {
			rates[pair.From] = rate
		}
	}
	rates[reportCurrency] = decimal.NewFromInt(1)
	return rates
}

// rateRecord is the serializable form of one exchange rate.
type rateRecord struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}

// DecodeRates decodes a rate table from a stream of JSONL data, schema
// header first.
func DecodeRates(r io.Reader) (*RateTable, error) {
	table := NewRateTable()
	scanner := bufio.NewScanner(r)

	empty, err := readSchemaHeader(scanner)
	if err != nil {
		return nil, err
	}
	if empty {
		return table, nil
	}

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec rateRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not decode rate line %q: %w", string(line), err)
		}
		if rec.From == "" || rec.To == "" {
			return nil, fmt.Errorf("rate line %q has no currency pair", string(line))
		}
		table.Set(rec.From, rec.To, rec.Rate)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading rates: %w", err)
	}
	return table, nil
}

// EncodeRates persists a rate table in JSONL format, schema header first,
// one rate per line in pair order.
func EncodeRates(w io.Writer, table *RateTable) error {
	if err := writeSchemaHeader(w); err != nil {
		return fmt.Errorf("failed to write schema header: %w", err)
	}
	pairs := make([]ratePair, 0, len(table.rates))
	for pair := range table.rates {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})
	for _, pair := range pairs {
		data, err := json.Marshal(rateRecord{From: pair.From, To: pair.To, Rate: table.rates[pair]})
		if err != nil {
			return fmt.Errorf("failed to marshal rate %s/%s: %w", pair.From, pair.To, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write rate %s/%s: %w", pair.From, pair.To, err)
		}
	}
	return nil
}
