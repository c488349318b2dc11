package order

import (
	"testing"

	"emrys-pos/internal/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productA() product.Product {
	return product.Product{ID: "a", Name: "Cashmere Overcoat", Price: decimal.NewFromInt(100), SKU: "EM-M-002"}
}

func productB() product.Product {
	return product.Product{ID: "b", Name: "Silk Bow Tie", Price: decimal.NewFromInt(50), SKU: "EM-A-003"}
}

func TestLedger_Add(t *testing.T) {
	t.Run("New product starts at quantity 1", func(t *testing.T) {
		l := NewLedger()
		l.Add(productA())

		lines := l.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("Repeated add increments existing line", func(t *testing.T) {
		l := NewLedger()
		l.Add(productA())
		l.Add(productA())
		l.Add(productA())

		lines := l.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity)
	})

	t.Run("Insertion order preserved", func(t *testing.T) {
		l := NewLedger()
		l.Add(productA())
		l.Add(productB())
		l.Add(productA())

		lines := l.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "a", lines[0].Product.ID)
		assert.Equal(t, "b", lines[1].Product.ID)
	})
}

func TestLedger_Adjust(t *testing.T) {
	t.Run("Positive delta", func(t *testing.T) {
		l := NewLedger()
		l.Add(productA())
		l.Adjust("a", 4)

		assert.Equal(t, 5, l.Lines()[0].Quantity)
	})

	t.Run("Negative delta", func(t *testing.T) {
		l := NewLedger()
		l.Add(productA())
		l.Adjust("a", 4)
		l.Adjust("a", -2)

		assert.Equal(t, 3, l.Lines()[0].Quantity)
	})

	t.Run("Reaching zero removes the line", func(t *testing.T) {
		l := NewLedger()
		l.Add(productA())
		l.Add(productA())
		l.Adjust("a", -2)

		assert.Empty(t, l.Lines())
	})

	t.Run("Clamped below zero removes the line", func(t *testing.T) {
		l := NewLedger()
		l.Add(productA())
		l.Adjust("a", -99)

		assert.Empty(t, l.Lines())
		// further adjusts on the removed id are no-ops
		l.Adjust("a", -1)
		assert.Empty(t, l.Lines())
	})

	t.Run("Unknown id is a no-op", func(t *testing.T) {
		l := NewLedger()
		l.Add(productA())
		l.Adjust("missing", 5)

		lines := l.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("No line ever holds quantity <= 0", func(t *testing.T) {
		l := NewLedger()
		deltas := []int{3, -1, -5, 2, -2, 7, -100, 1}
		l.Add(productA())
		for _, d := range deltas {
			l.Adjust("a", d)
			for _, line := range l.Lines() {
				assert.GreaterOrEqual(t, line.Quantity, 1)
			}
		}
	})
}

func TestLedger_Clear(t *testing.T) {
	l := NewLedger()
	l.Add(productA())
	l.Add(productB())

	l.Clear()
	assert.Empty(t, l.Lines())
	assert.True(t, l.Empty())

	// idempotent
	l.Clear()
	assert.Empty(t, l.Lines())
}

func TestLedger_Subtotal(t *testing.T) {
	t.Run("Sum of unit price times quantity", func(t *testing.T) {
		l := NewLedger()
		l.Add(productA())
		l.Add(productA())
		l.Add(productB())

		assert.True(t, decimal.NewFromInt(250).Equal(l.Subtotal()))
	})

	t.Run("Order independent", func(t *testing.T) {
		forward := NewLedger()
		forward.Add(productA())
		forward.Add(productB())
		forward.Adjust("a", 1)

		reverse := NewLedger()
		reverse.Add(productB())
		reverse.Add(productA())
		reverse.Adjust("a", 1)

		assert.True(t, forward.Subtotal().Equal(reverse.Subtotal()))
	})

	t.Run("Exact decimal accumulation", func(t *testing.T) {
		// 0.10 * 3 would drift under float64 accumulation
		l := NewLedger()
		p := product.Product{ID: "c", Price: decimal.RequireFromString("0.10")}
		l.Add(p)
		l.Adjust("c", 2)

		assert.Equal(t, "0.3", l.Subtotal().String())
	})

	t.Run("Empty ledger", func(t *testing.T) {
		assert.True(t, NewLedger().Subtotal().IsZero())
	})
}

func TestLedger_ItemCount(t *testing.T) {
	l := NewLedger()
	assert.Equal(t, 0, l.ItemCount())

	l.Add(productA())
	l.Add(productA())
	l.Add(productB())
	assert.Equal(t, 3, l.ItemCount())
}
