package product

import (
	"context"

	"emrys-pos/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service defines the catalog operations exposed to the terminal.
type Service interface {
	Lookup(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, opts ListOptions) []Product
	Create(ctx context.Context, input NewProductInput) (Product, error)
	UpdatePrice(ctx context.Context, id string, price decimal.Decimal) (Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Lookup(ctx context.Context, id string) (*Product, error) {
	return s.repo.Lookup(id)
}

func (s *service) List(ctx context.Context, opts ListOptions) []Product {
	return s.repo.List(opts)
}

func (s *service) Create(ctx context.Context, input NewProductInput) (Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	if input.Name == "" {
		return Product{}, ErrEmptyName
	}
	if !input.Category.Valid() {
		return Product{}, ErrUnknownCategory
	}
	if input.Price.IsNegative() {
		return Product{}, ErrNegativePrice
	}

	p, err := s.repo.Create(input)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return Product{}, err
	}

	log.Info("product created",
		zap.String("product_id", p.ID),
		zap.String("sku", p.SKU),
	)
	return p, nil
}

func (s *service) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) (Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdatePrice"),
	)

	if price.IsNegative() {
		return Product{}, ErrNegativePrice
	}

	p, err := s.repo.UpdatePrice(id, price)
	if err != nil {
		return Product{}, err
	}

	log.Info("price updated",
		zap.String("product_id", id),
		zap.String("price", price.String()),
	)
	return p, nil
}
