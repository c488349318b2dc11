// Package money centralizes monetary arithmetic. All intermediate
// math stays on decimal values; rounding happens only at the display
// boundary, half-to-even, two places.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// LineTotal returns unit price multiplied by quantity.
func LineTotal(unit decimal.Decimal, quantity int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

// Tax returns subtotal * ratePercent / 100, unrounded.
func Tax(subtotal decimal.Decimal, ratePercent float64) decimal.Decimal {
	return subtotal.Mul(decimal.NewFromFloat(ratePercent)).Div(hundred)
}

// Display renders an amount rounded half-to-even to two places,
// always with a two-digit fraction ("250.00").
func Display(amount decimal.Decimal) string {
	return amount.RoundBank(2).StringFixed(2)
}

// Format prefixes Display with the store currency symbol.
func Format(currency string, amount decimal.Decimal) string {
	return currency + Display(amount)
}
