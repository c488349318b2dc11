package httpserver

import (
	"time"

	"emrys-pos/internal/money"
	"emrys-pos/internal/order"
	"emrys-pos/internal/product"
	"emrys-pos/internal/settings"
)

// Amounts cross the API rounded for display; everything upstream of
// these mappers stays unrounded.

type productDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image"`
	SKU      string `json:"sku"`
}

func toProductDTO(p product.Product) productDTO {
	return productDTO{
		ID:       p.ID,
		Name:     p.Name,
		Price:    money.Display(p.Price),
		Category: string(p.Category),
		Image:    p.ImageURL,
		SKU:      p.SKU,
	}
}

type lineItemDTO struct {
	Product   productDTO `json:"product"`
	Quantity  int        `json:"quantity"`
	LineTotal string     `json:"lineTotal"`
}

func toLineItemDTOs(items []order.LineItem) []lineItemDTO {
	out := make([]lineItemDTO, 0, len(items))
	for _, line := range items {
		out = append(out, lineItemDTO{
			Product:   toProductDTO(line.Product),
			Quantity:  line.Quantity,
			LineTotal: money.Display(money.LineTotal(line.Product.Price, line.Quantity)),
		})
	}
	return out
}

type cartDTO struct {
	Items     []lineItemDTO `json:"items"`
	ItemCount int           `json:"itemCount"`
	Subtotal  string        `json:"subtotal"`
	Tax       string        `json:"tax"`
	Total     string        `json:"total"`
	TaxRate   float64       `json:"taxRate"`
	Currency  string        `json:"currency"`
}

func toCartDTO(items []order.LineItem, itemCount int, totals order.Totals, st settings.StoreSettings) cartDTO {
	return cartDTO{
		Items:     toLineItemDTOs(items),
		ItemCount: itemCount,
		Subtotal:  money.Display(totals.Subtotal),
		Tax:       money.Display(totals.Tax),
		Total:     money.Display(totals.GrandTotal),
		TaxRate:   st.TaxRate,
		Currency:  st.Currency,
	}
}

type invoiceDTO struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	Items     []lineItemDTO `json:"items"`
	Subtotal  string        `json:"subtotal"`
	Tax       string        `json:"tax"`
	Total     string        `json:"total"`
	Currency  string        `json:"currency"`
}

func toInvoiceDTO(inv *order.Invoice, st settings.StoreSettings) invoiceDTO {
	totals := order.ComputeTotals(inv.Items, st.TaxRate)
	return invoiceDTO{
		ID:        inv.ID,
		CreatedAt: inv.CreatedAt,
		Items:     toLineItemDTOs(inv.Items),
		Subtotal:  money.Display(totals.Subtotal),
		Tax:       money.Display(totals.Tax),
		Total:     money.Display(totals.GrandTotal),
		Currency:  st.Currency,
	}
}
