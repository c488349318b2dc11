package order

import (
	"context"
	"sync"
	"time"

	"emrys-pos/internal/logger"
	"emrys-pos/internal/metrics"
	"emrys-pos/internal/product"
	"emrys-pos/internal/settings"

	"go.uber.org/zap"
)

// Service owns the active cart and the invoice pending confirmation.
// Checkout does not clear the cart: the caller completes the invoice
// once it has been presented (and optionally printed), so a failed
// print can be retried against unchanged state.
type Service interface {
	AddItem(ctx context.Context, productID string) error
	AdjustQuantity(ctx context.Context, productID string, delta int) error
	Clear(ctx context.Context)
	Lines() []LineItem
	ItemCount() int
	Totals() Totals
	Checkout(ctx context.Context) (*Invoice, error)
	PendingInvoice() (*Invoice, error)
	CompleteInvoice(ctx context.Context) error
}

type service struct {
	ledger   *Ledger
	catalog  product.Repository
	settings settings.Service
	stats    *metrics.Registry

	mu      sync.Mutex
	pending *Invoice
}

func NewService(catalog product.Repository, settingsSvc settings.Service, stats *metrics.Registry) Service {
	return &service{
		ledger:   NewLedger(),
		catalog:  catalog,
		settings: settingsSvc,
		stats:    stats,
	}
}

func (s *service) AddItem(ctx context.Context, productID string) error {
	p, err := s.catalog.Lookup(productID)
	if err != nil {
		return err
	}

	s.ledger.Add(*p)

	logger.FromCtx(ctx).Debug("item added to cart",
		zap.String("product_id", productID),
		zap.Int("item_count", s.ledger.ItemCount()),
	)
	return nil
}

func (s *service) AdjustQuantity(ctx context.Context, productID string, delta int) error {
	s.ledger.Adjust(productID, delta)
	return nil
}

func (s *service) Clear(ctx context.Context) {
	s.ledger.Clear()
	logger.FromCtx(ctx).Debug("cart cleared")
}

func (s *service) Lines() []LineItem {
	return s.ledger.Lines()
}

func (s *service) ItemCount() int {
	return s.ledger.ItemCount()
}

func (s *service) Totals() Totals {
	return ComputeTotals(s.ledger.Lines(), s.settings.Get().TaxRate)
}

// Checkout freezes the current lines into a new Invoice and keeps it
// as pending. Fails on an empty cart; the cart is left untouched in
// both cases.
func (s *service) Checkout(ctx context.Context) (*Invoice, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
	)

	lines := s.ledger.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	inv := &Invoice{
		ID:        newInvoiceNumber(),
		CreatedAt: time.Now(),
		Items:     lines,
	}

	s.mu.Lock()
	s.pending = inv
	s.mu.Unlock()

	if s.stats != nil {
		s.stats.Checkouts.Inc()
		s.stats.ItemsSold.Add(uint64(s.ledger.ItemCount()))
	}

	log.Info("checkout complete",
		zap.String("invoice_id", inv.ID),
		zap.Int("lines", len(inv.Items)),
	)
	return inv, nil
}

// PendingInvoice returns the invoice awaiting confirmation.
func (s *service) PendingInvoice() (*Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return nil, ErrNoPendingInvoice
	}
	return s.pending, nil
}

// CompleteInvoice is the confirmation-dismissed step: the pending
// invoice is dropped and the cart resets for the next customer.
func (s *service) CompleteInvoice(ctx context.Context) error {
	s.mu.Lock()
	if s.pending == nil {
		s.mu.Unlock()
		return ErrNoPendingInvoice
	}
	id := s.pending.ID
	s.pending = nil
	s.mu.Unlock()

	s.ledger.Clear()

	logger.FromCtx(ctx).Info("invoice completed", zap.String("invoice_id", id))
	return nil
}
