package folio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File names reserved for market and security data inside a data directory.
// Every other .jsonl file is a ledger.
const (
	securitiesFile = "securities.jsonl"
	pricesFile     = "prices.jsonl"
	ratesFile      = "rates.jsonl"
)

// FindLedger loads the ledger called name from the data directory. A missing
// file yields a new empty ledger with that name, so a fresh directory works
// without ceremony.
func FindLedger(dir, name string) (*Ledger, error) {
	if name == "" {
		return nil, errors.New("ledger name is missing")
	}
	path := filepath.Join(dir, name+".jsonl")
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		l := NewLedger()
		l.name = name
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	ledger.name = name
	return ledger, nil
}

// FindLedgers discovers and loads every ledger file in the data directory.
// A ledger name is its relative path from the directory, without the .jsonl
// extension. The reserved market data files are skipped.
func FindLedgers(dir string) ([]*Ledger, error) {
	var ledgers []*Ledger
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // an absent data directory holds no ledgers
		}
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".jsonl") {
			return nil
		}
		switch filepath.Base(p) {
		case securitiesFile, pricesFile, ratesFile:
			return nil
		}
		relPath, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(relPath, ".jsonl")
		ledger, err := FindLedger(dir, name)
		if err != nil {
			return err
		}
		ledgers = append(ledgers, ledger)
		return nil
	})
	return ledgers, err
}

// SaveLedger saves a ledger to its file within the data directory, using the
// ledger's name to construct the path.
func SaveLedger(dir string, ledger *Ledger) error {
	if ledger.Name() == "" {
		return errors.New("cannot save ledger with an empty name")
	}
	path := filepath.Join(dir, ledger.Name()+".jsonl")
	return writeFile(path, func(w io.Writer) error { return EncodeLedger(w, ledger) })
}

// LoadSecurities loads the securities database from the data directory. A
// missing file yields an empty database.
func LoadSecurities(dir string) (*Securities, error) {
	path := filepath.Join(dir, securitiesFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewSecurities(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open securities file %q: %w", path, err)
	}
	defer f.Close()

	secs, err := DecodeSecurities(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode securities file %q: %w", path, err)
	}
	return secs, nil
}

// SaveSecurities saves the securities database into the data directory.
func SaveSecurities(dir string, secs *Securities) error {
	path := filepath.Join(dir, securitiesFile)
	return writeFile(path, func(w io.Writer) error { return EncodeSecurities(w, secs) })
}

// LoadPrices loads the quoted price table from the data directory. A missing
// file yields an empty table, and the engine's average-cost fallback covers
// the holdings it leaves unquoted.
func LoadPrices(dir string) (StaticPrices, error) {
	path := filepath.Join(dir, pricesFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(StaticPrices), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open prices file %q: %w", path, err)
	}
	defer f.Close()

	prices, err := DecodePrices(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode prices file %q: %w", path, err)
	}
	return prices, nil
}

// SavePrices saves the quoted price table into the data directory.
func SavePrices(dir string, prices StaticPrices) error {
	path := filepath.Join(dir, pricesFile)
	return writeFile(path, func(w io.Writer) error { return EncodePrices(w, prices) })
}

// LoadRates loads the exchange rate table from the data directory. A missing
// file yields an empty table.
func LoadRates(dir string) (*RateTable, error) {
	path := filepath.Join(dir, ratesFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewRateTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open rates file %q: %w", path, err)
	}
	defer f.Close()

	rates, err := DecodeRates(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode rates file %q: %w", path, err)
	}
	return rates, nil
}

// SaveRates saves the exchange rate table into the data directory.
func SaveRates(dir string, rates *RateTable) error {
	path := filepath.Join(dir, ratesFile)
	return writeFile(path, func(w io.Writer) error { return EncodeRates(w, rates) })
}

// writeFile creates the parent directory, then writes the file through the
// encode callback.
func writeFile(path string, encode func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open %q for writing: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
