package folio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"sort"
)

// Security describes an instrument referenced by ledger transactions. The
// dashboard uses it to group holdings by sector; everything else works from
// the transaction metadata alone, so declaring securities is optional.
type Security struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name,omitempty"`
	Sector   string `json:"sector,omitempty"`
	Country  string `json:"country,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// Securities is an indexed collection of security descriptions.
type Securities struct {
	index map[string]Security
}

// NewSecurities returns a new empty securities database.
func NewSecurities() *Securities {
	return &Securities{index: make(map[string]Security)}
}

// Add inserts a security, replacing any previous description of its ticker.
func (s *Securities) Add(sec Security) {
	s.index[sec.Ticker] = sec
}

// Get returns the security declared with this ticker, or nil if unknown.
func (s *Securities) Get(ticker string) *Security {
	sec, ok := s.index[ticker]
	if !ok {
		return nil
	}
	return &sec
}

// Has reports whether a ticker is declared.
func (s *Securities) Has(ticker string) bool {
	_, ok := s.index[ticker]
	return ok
}

// Len returns the number of declared securities.
func (s *Securities) Len() int { return len(s.index) }

// All iterates over the declared securities in ticker order.
func (s *Securities) All() iter.Seq[Security] {
	return func(yield func(Security) bool) {
		tickers := make([]string, 0, len(s.index))
		for ticker := range s.index {
			tickers = append(tickers, ticker)
		}
		sort.Strings(tickers)
		for _, ticker := range tickers {
			if !yield(s.index[ticker]) {
				return
			}
		}
	}
}

// DecodeSecurities decodes a securities database from a stream of JSONL
// data, schema header first.
func DecodeSecurities(r io.Reader) (*Securities, error) {
	secs := NewSecurities()
	scanner := bufio.NewScanner(r)

	empty, err := readSchemaHeader(scanner)
	if err != nil {
		return nil, err
	}
	if empty {
		return secs, nil
	}

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var sec Security
		if err := json.Unmarshal(line, &sec); err != nil {
			return nil, fmt.Errorf("could not decode security line %q: %w", string(line), err)
		}
		if sec.Ticker == "" {
			return nil, fmt.Errorf("security line %q has no ticker", string(line))
		}
		secs.Add(sec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading securities: %w", err)
	}
	return secs, nil
}

// EncodeSecurities persists a securities database to an io.Writer in JSONL
// format, schema header first, one security per line in ticker order.
func EncodeSecurities(w io.Writer, secs *Securities) error {
	if err := writeSchemaHeader(w); err != nil {
		return fmt.Errorf("failed to write schema header: %w", err)
	}
	for sec := range secs.All() {
		data, err := json.Marshal(sec)
		if err != nil {
			return fmt.Errorf("failed to marshal security %q: %w", sec.Ticker, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write security %q: %w", sec.Ticker, err)
		}
	}
	return nil
}
