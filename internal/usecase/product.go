package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/domain/repository"
)

// ProductUseCase manages the catalog.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create validates and stores a new product.
func (u *ProductUseCase) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if product.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", domainErrors.ErrValidation)
	}
	return u.products.Create(ctx, product)
}

// Update validates and persists catalog fields. Stock is not touched here;
// it changes only through AdjustStock or SetStock.
func (u *ProductUseCase) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	if product.ID == "" {
		return nil, fmt.Errorf("%w: product id is required", domainErrors.ErrValidation)
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return u.products.Update(ctx, product)
}

func validateProduct(product model.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("%w: name is required", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(product.SKU) == "" {
		return fmt.Errorf("%w: sku is required", domainErrors.ErrValidation)
	}
	if product.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domainErrors.ErrValidation)
	}
	return nil
}

// Get returns a single product.
func (u *ProductUseCase) Get(ctx context.Context, id string) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns the full catalog.
func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// LowStock returns products at or below the threshold.
func (u *ProductUseCase) LowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	return u.products.ListBelowStock(ctx, threshold)
}

// Delete removes a product unless it is referenced by order items.
func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	return u.products.Delete(ctx, id)
}

// AdjustStock applies a signed delta through the atomic primitive.
func (u *ProductUseCase) AdjustStock(ctx context.Context, id string, delta int) (*model.Product, error) {
	if delta == 0 {
		return nil, fmt.Errorf("%w: stock delta must not be zero", domainErrors.ErrValidation)
	}
	return u.products.AdjustStock(ctx, id, delta)
}

// SetStock overwrites the stock level from the manual admin screen.
func (u *ProductUseCase) SetStock(ctx context.Context, id string, stock int) (*model.Product, error) {
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", domainErrors.ErrValidation)
	}
	return u.products.SetStock(ctx, id, stock)
}
