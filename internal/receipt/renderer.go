// Package receipt turns an invoice into the plain-text receipt sent
// to the thermal printer. Pure formatting; the transport treats the
// result as an opaque blob.
package receipt

import (
	"fmt"
	"strconv"
	"strings"

	"emrys-pos/internal/money"
	"emrys-pos/internal/order"
	"emrys-pos/internal/settings"
)

const (
	divider = "--------------------------------"
	// thermal rolls fit about 32 columns; long names are cut
	maxNameRunes = 20
)

// Render produces the printable receipt for an invoice under the
// given store profile.
func Render(inv *order.Invoice, st settings.StoreSettings) string {
	totals := order.ComputeTotals(inv.Items, st.TaxRate)

	var b strings.Builder
	b.WriteString(strings.ToUpper(st.StoreName) + "\n")
	b.WriteString(st.Address + "\n")
	b.WriteString("Tel: " + st.Phone + "\n")
	b.WriteString(divider + "\n")
	b.WriteString("Inv No: " + inv.ID + "\n")
	b.WriteString("Date: " + inv.CreatedAt.Format("02/01/2006 15:04") + "\n")
	b.WriteString(divider + "\n")

	for _, line := range inv.Items {
		lineTotal := money.LineTotal(line.Product.Price, line.Quantity)
		b.WriteString(fmt.Sprintf("%s x%d\n", truncate(line.Product.Name, maxNameRunes), line.Quantity))
		b.WriteString(money.Format(st.Currency, lineTotal) + "\n")
	}

	b.WriteString(divider + "\n")
	b.WriteString("Subtotal: " + money.Format(st.Currency, totals.Subtotal) + "\n")
	b.WriteString(fmt.Sprintf("Tax (%s%%): %s\n", formatRate(st.TaxRate), money.Format(st.Currency, totals.Tax)))
	b.WriteString("TOTAL: " + money.Format(st.Currency, totals.GrandTotal) + "\n")
	b.WriteString(divider + "\n")
	b.WriteString("Thank you for visiting\n")
	b.WriteString(st.StoreName + "\n")

	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
