package order

import (
	"time"

	"emrys-pos/internal/product"
)

// LineItem couples a catalog snapshot with a quantity. While the
// line lives in the ledger its quantity is always >= 1; a mutation
// that would reach 0 removes the line instead.
type LineItem struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Invoice is the frozen result of a checkout. It is never mutated
// after creation; a new checkout always produces a new Invoice.
type Invoice struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	Items     []LineItem `json:"items"`
}
