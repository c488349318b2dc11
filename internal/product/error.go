package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrUnknownCategory = errors.New("unknown category")
)
