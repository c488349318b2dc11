package order

import (
	"sync"

	"emrys-pos/internal/money"
	"emrys-pos/internal/product"

	"github.com/shopspring/decimal"
)

// Ledger is the mutable cart. Lines keep the order in which distinct
// products were first added; at most one line exists per product id.
// The mutex only guards against concurrent HTTP requests — the POS
// contract itself is single-caller.
type Ledger struct {
	mu    sync.Mutex
	lines []LineItem
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Add inserts the product with quantity 1, or bumps the existing
// line's quantity by 1.
func (l *Ledger) Add(p product.Product) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].Product.ID == p.ID {
			l.lines[i].Quantity++
			return
		}
	}
	l.lines = append(l.lines, LineItem{Product: p, Quantity: 1})
}

// Adjust applies a signed delta to the line's quantity, clamped at
// zero; a zero result removes the line. Unknown ids are a no-op.
func (l *Ledger) Adjust(productID string, delta int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].Product.ID != productID {
			continue
		}
		q := l.lines[i].Quantity + delta
		if q <= 0 {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
		} else {
			l.lines[i].Quantity = q
		}
		return
	}
}

// Clear drops every line. Idempotent.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (l *Ledger) Lines() []LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

func (l *Ledger) snapshot() []LineItem {
	out := make([]LineItem, len(l.lines))
	copy(out, l.lines)
	return out
}

// Subtotal sums unit price times quantity across all lines.
func (l *Ledger) Subtotal() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	sum := decimal.Zero
	for _, line := range l.lines {
		sum = sum.Add(money.LineTotal(line.Product.Price, line.Quantity))
	}
	return sum
}

// ItemCount sums quantities. Display badge only.
func (l *Ledger) ItemCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

// Empty reports whether the ledger has no lines.
func (l *Ledger) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines) == 0
}
