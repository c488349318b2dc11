package product

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository is the catalog store boundary. The terminal keeps the
// whole catalog in memory; there is no durable storage behind it.
type Repository interface {
	Lookup(id string) (*Product, error)
	List(opts ListOptions) []Product
	Create(input NewProductInput) (Product, error)
	UpdatePrice(id string, price decimal.Decimal) (Product, error)
}

type repository struct {
	mu       sync.RWMutex
	items    []Product
	index    map[string]int
	newCount int
}

// NewRepository builds an in-memory catalog seeded with the given
// products. Seed order is preserved for listing.
func NewRepository(seed []Product) Repository {
	r := &repository{
		items: make([]Product, 0, len(seed)),
		index: make(map[string]int, len(seed)),
	}
	for _, p := range seed {
		r.index[p.ID] = len(r.items)
		r.items = append(r.items, p)
	}
	return r
}

func (r *repository) Lookup(id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := r.items[i]
	return &p, nil
}

func (r *repository) List(opts ListOptions) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(opts.Search)
	out := make([]Product, 0, len(r.items))
	for _, p := range r.items {
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *repository) Create(input NewProductInput) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.newCount++
	p := Product{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
		ImageURL: input.ImageURL,
		SKU:      fmt.Sprintf("EM-NEW-%03d", r.newCount),
	}
	r.index[p.ID] = len(r.items)
	r.items = append(r.items, p)
	return p, nil
}

func (r *repository) UpdatePrice(id string, price decimal.Decimal) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	r.items[i].Price = price
	return r.items[i], nil
}
