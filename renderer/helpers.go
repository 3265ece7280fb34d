// Package renderer turns engine results into markdown reports.
package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatMoney renders a monetary value with the symbol and decimal places of
// its currency. An unknown or empty currency code falls back to two plain
// decimal places.
func formatMoney(v decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return v.StringFixed(2)
	}
	minor := v.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

// formatSignedMoney is formatMoney with an explicit plus sign on gains.
func formatSignedMoney(v decimal.Decimal, code string) string {
	s := formatMoney(v, code)
	if v.IsPositive() {
		return "+" + s
	}
	return s
}

// formatPercent renders a percentage with two decimal places.
func formatPercent(v decimal.Decimal) string {
	return v.StringFixed(2) + "%"
}

// formatSignedPercent is formatPercent with an explicit plus sign on gains.
func formatSignedPercent(v decimal.Decimal) string {
	s := formatPercent(v)
	if v.IsPositive() {
		return "+" + s
	}
	return s
}

// formatQuantity renders a share count without trailing zeros.
func formatQuantity(v decimal.Decimal) string {
	return v.String()
}
