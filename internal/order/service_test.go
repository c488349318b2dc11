package order

import (
	"context"
	"strings"
	"testing"

	"emrys-pos/internal/metrics"
	"emrys-pos/internal/product"
	"emrys-pos/internal/settings"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalog is a mock implementation of product.Repository
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Lookup(id string) (*product.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockCatalog) List(opts product.ListOptions) []product.Product {
	args := m.Called(opts)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]product.Product)
}

func (m *MockCatalog) Create(input product.NewProductInput) (product.Product, error) {
	args := m.Called(input)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockCatalog) UpdatePrice(id string, price decimal.Decimal) (product.Product, error) {
	args := m.Called(id, price)
	return args.Get(0).(product.Product), args.Error(1)
}

func newTestService(t *testing.T) (Service, *MockCatalog) {
	t.Helper()
	catalog := new(MockCatalog)
	svc := NewService(catalog, settings.NewService(settings.Defaults()), metrics.NewRegistry())
	return svc, catalog
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, catalog := newTestService(t)
		p := productA()
		catalog.On("Lookup", "a").Return(&p, nil)

		require.NoError(t, svc.AddItem(ctx, "a"))
		require.NoError(t, svc.AddItem(ctx, "a"))

		lines := svc.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
		catalog.AssertExpectations(t)
	})

	t.Run("Unknown product surfaces catalog error", func(t *testing.T) {
		svc, catalog := newTestService(t)
		catalog.On("Lookup", "ghost").Return(nil, product.ErrProductNotFound)

		err := svc.AddItem(ctx, "ghost")

		assert.ErrorIs(t, err, product.ErrProductNotFound)
		assert.Empty(t, svc.Lines())
	})
}

func TestService_Totals(t *testing.T) {
	ctx := context.Background()
	svc, catalog := newTestService(t)
	a, b := productA(), productB()
	catalog.On("Lookup", "a").Return(&a, nil)
	catalog.On("Lookup", "b").Return(&b, nil)

	require.NoError(t, svc.AddItem(ctx, "a"))
	require.NoError(t, svc.AddItem(ctx, "a"))
	require.NoError(t, svc.AddItem(ctx, "b"))

	totals := svc.Totals()

	// default settings carry the 20% rate
	assert.True(t, decimal.NewFromInt(250).Equal(totals.Subtotal))
	assert.True(t, decimal.NewFromInt(50).Equal(totals.Tax))
	assert.True(t, decimal.NewFromInt(300).Equal(totals.GrandTotal))
}

func TestService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty order fails and stays unchanged", func(t *testing.T) {
		svc, _ := newTestService(t)

		inv, err := svc.Checkout(ctx)

		assert.Nil(t, inv)
		assert.ErrorIs(t, err, ErrEmptyOrder)
		assert.Empty(t, svc.Lines())

		_, err = svc.PendingInvoice()
		assert.ErrorIs(t, err, ErrNoPendingInvoice)
	})

	t.Run("Success leaves cart intact and pins pending invoice", func(t *testing.T) {
		svc, catalog := newTestService(t)
		a := productA()
		catalog.On("Lookup", "a").Return(&a, nil)
		require.NoError(t, svc.AddItem(ctx, "a"))

		inv, err := svc.Checkout(ctx)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(inv.ID, "INV-"))
		assert.False(t, inv.CreatedAt.IsZero())
		require.Len(t, inv.Items, 1)

		// cart untouched until the confirmation is dismissed
		assert.Len(t, svc.Lines(), 1)

		pending, err := svc.PendingInvoice()
		require.NoError(t, err)
		assert.Equal(t, inv.ID, pending.ID)
	})

	t.Run("Invoice is a frozen copy", func(t *testing.T) {
		svc, catalog := newTestService(t)
		a := productA()
		catalog.On("Lookup", "a").Return(&a, nil)
		require.NoError(t, svc.AddItem(ctx, "a"))

		inv, err := svc.Checkout(ctx)
		require.NoError(t, err)

		// mutating the cart afterwards must not alter the invoice
		require.NoError(t, svc.AddItem(ctx, "a"))
		svc.Clear(ctx)

		require.Len(t, inv.Items, 1)
		assert.Equal(t, 1, inv.Items[0].Quantity)
	})

	t.Run("Each checkout produces a distinct invoice", func(t *testing.T) {
		svc, catalog := newTestService(t)
		a := productA()
		catalog.On("Lookup", "a").Return(&a, nil)
		require.NoError(t, svc.AddItem(ctx, "a"))

		first, err := svc.Checkout(ctx)
		require.NoError(t, err)
		second, err := svc.Checkout(ctx)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestService_CompleteInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("Clears cart and drops pending invoice", func(t *testing.T) {
		svc, catalog := newTestService(t)
		a := productA()
		catalog.On("Lookup", "a").Return(&a, nil)
		require.NoError(t, svc.AddItem(ctx, "a"))

		_, err := svc.Checkout(ctx)
		require.NoError(t, err)

		require.NoError(t, svc.CompleteInvoice(ctx))

		assert.Empty(t, svc.Lines())
		_, err = svc.PendingInvoice()
		assert.ErrorIs(t, err, ErrNoPendingInvoice)
	})

	t.Run("Nothing pending", func(t *testing.T) {
		svc, _ := newTestService(t)
		assert.ErrorIs(t, svc.CompleteInvoice(ctx), ErrNoPendingInvoice)
	})
}

func TestNewInvoiceNumber(t *testing.T) {
	first := newInvoiceNumber()
	second := newInvoiceNumber()

	assert.True(t, strings.HasPrefix(first, "INV-"))
	assert.NotEqual(t, first, second)
}
