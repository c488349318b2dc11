package order

import (
	"emrys-pos/internal/money"

	"github.com/shopspring/decimal"
)

// Totals carries the unrounded order totals. Rounding happens only
// when the amounts are displayed or printed.
type Totals struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals is the pure tax/total function shared by the cart
// summary and the invoice view: tax = subtotal * rate / 100,
// grand = subtotal + tax.
func ComputeTotals(items []LineItem, taxRate float64) Totals {
	subtotal := decimal.Zero
	for _, line := range items {
		subtotal = subtotal.Add(money.LineTotal(line.Product.Price, line.Quantity))
	}

	tax := money.Tax(subtotal, taxRate)
	return Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
	}
}
