package product

import "github.com/shopspring/decimal"

// Category is the fixed set of departments in the boutique.
type Category string

const (
	CategoryMen         Category = "Men"
	CategoryWomen       Category = "Women"
	CategoryAccessories Category = "Accessories"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryAccessories:
		return true
	}
	return false
}

// Product is an immutable catalog entry. The ledger and invoices
// copy it; only the catalog store mutates its price.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category Category        `json:"category"`
	ImageURL string          `json:"image"`
	SKU      string          `json:"sku"`
}

type NewProductInput struct {
	Name     string
	Price    decimal.Decimal
	Category Category
	ImageURL string
}

type ListOptions struct {
	// Search matches name or SKU, case-insensitive substring.
	Search string
	// Category narrows to one department; empty means all.
	Category Category
}
