package repository

import (
	"context"

	"github.com/hazemhalim/dukkan/internal/domain/model"
)

// ProductRepository describes persistence operations with catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListBelowStock(ctx context.Context, threshold int) ([]model.Product, error)
	Update(ctx context.Context, product model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string) error

	// AdjustStock atomically applies a signed delta to product stock at the
	// storage layer. Stock never goes below zero.
	AdjustStock(ctx context.Context, id string, delta int) (*model.Product, error)

	// SetStock overwrites stock directly. Admin escape hatch with no
	// concurrency protection beyond the non-negativity check.
	SetStock(ctx context.Context, id string, stock int) (*model.Product, error)
}
