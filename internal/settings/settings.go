// Package settings holds the process-wide store profile: the header
// printed on receipts plus the tax rate and currency symbol used by
// total computation.
package settings

import (
	"context"
	"errors"
	"sync"

	"emrys-pos/internal/logger"

	"go.uber.org/zap"
)

var ErrNegativeTaxRate = errors.New("tax rate must not be negative")

type StoreSettings struct {
	StoreName string  `json:"storeName"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	TaxRate   float64 `json:"taxRate"`
	Currency  string  `json:"currency"`
}

// Defaults is the profile the terminal boots with when nothing is
// configured.
func Defaults() StoreSettings {
	return StoreSettings{
		StoreName: "Emrys Luxury",
		Address:   "12 Savile Row, Mayfair, London W1S 3PQ",
		Phone:     "+44 20 7123 4567",
		TaxRate:   20,
		Currency:  "£",
	}
}

type Service interface {
	Get() StoreSettings
	Update(ctx context.Context, input StoreSettings) (StoreSettings, error)
}

type service struct {
	mu      sync.RWMutex
	current StoreSettings
}

func NewService(initial StoreSettings) Service {
	return &service{current: initial}
}

func (s *service) Get() StoreSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *service) Update(ctx context.Context, input StoreSettings) (StoreSettings, error) {
	if input.TaxRate < 0 {
		return StoreSettings{}, ErrNegativeTaxRate
	}

	s.mu.Lock()
	s.current = input
	s.mu.Unlock()

	logger.FromCtx(ctx).Info("store settings updated",
		zap.String("store_name", input.StoreName),
		zap.Float64("tax_rate", input.TaxRate),
	)
	return input, nil
}
