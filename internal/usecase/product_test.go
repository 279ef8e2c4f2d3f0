package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
	testhelpers "github.com/hazemhalim/dukkan/internal/test"
)

func validProduct() model.Product {
	return model.Product{SKU: "SC-001", Name: "Silk Scarf", Price: 150, Stock: 10}
}

func TestProductUseCaseCreate(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{}
	uc := NewProductUseCase(repo)

	product, err := uc.Create(context.Background(), validProduct())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if product.ID == "" {
		t.Fatal("expected product to have ID assigned")
	}
}

func TestProductUseCaseCreateValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Product)
	}{
		{"missing name", func(p *model.Product) { p.Name = " " }},
		{"missing sku", func(p *model.Product) { p.SKU = "" }},
		{"negative price", func(p *model.Product) { p.Price = -1 }},
		{"negative stock", func(p *model.Product) { p.Stock = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewProductUseCase(&testhelpers.ProductRepositoryStub{})
			product := validProduct()
			tc.mutate(&product)
			if _, err := uc.Create(context.Background(), product); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestProductUseCaseUpdateRequiresID(t *testing.T) {
	uc := NewProductUseCase(&testhelpers.ProductRepositoryStub{})
	product := validProduct()
	if _, err := uc.Update(context.Background(), product); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProductUseCaseUpdateKeepsStock(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{
		Products: []model.Product{{ID: "product-1", SKU: "SC-001", Name: "Silk Scarf", Price: 150, Stock: 7}},
	}
	uc := NewProductUseCase(repo)

	updated := model.Product{ID: "product-1", SKU: "SC-001", Name: "Silk Scarf XL", Price: 180, Stock: 99}
	product, err := uc.Update(context.Background(), updated)
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if product.Stock != 7 {
		t.Fatalf("update must not change stock, got %d", product.Stock)
	}
	if product.Name != "Silk Scarf XL" {
		t.Fatalf("unexpected name %q", product.Name)
	}
}

func TestProductUseCaseAdjustStock(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{
		Products: []model.Product{{ID: "product-1", SKU: "SC-001", Name: "Silk Scarf", Stock: 5}},
	}
	uc := NewProductUseCase(repo)
	ctx := context.Background()

	product, err := uc.AdjustStock(ctx, "product-1", -3)
	if err != nil {
		t.Fatalf("adjust returned error: %v", err)
	}
	if product.Stock != 2 {
		t.Fatalf("expected stock 2, got %d", product.Stock)
	}

	if _, err := uc.AdjustStock(ctx, "product-1", -3); !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	if _, err := uc.AdjustStock(ctx, "product-1", 0); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for zero delta, got %v", err)
	}
}

func TestProductUseCaseSetStock(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{
		Products: []model.Product{{ID: "product-1", SKU: "SC-001", Name: "Silk Scarf", Stock: 5}},
	}
	uc := NewProductUseCase(repo)
	ctx := context.Background()

	product, err := uc.SetStock(ctx, "product-1", 42)
	if err != nil {
		t.Fatalf("set stock returned error: %v", err)
	}
	if product.Stock != 42 {
		t.Fatalf("expected stock 42, got %d", product.Stock)
	}

	if _, err := uc.SetStock(ctx, "product-1", -1); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for negative stock, got %v", err)
	}
}

func TestProductUseCaseLowStock(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{
		Products: []model.Product{
			{ID: "product-1", Stock: 1},
			{ID: "product-2", Stock: 3},
			{ID: "product-3", Stock: 10},
		},
	}
	uc := NewProductUseCase(repo)

	low, err := uc.LowStock(context.Background(), 3)
	if err != nil {
		t.Fatalf("low stock returned error: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("expected 2 low stock products, got %d", len(low))
	}
}

func TestProductUseCaseDeleteReferenced(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{
		DeleteFn: func(context.Context, string) error { return domainErrors.ErrReferenced },
	}
	uc := NewProductUseCase(repo)
	if err := uc.Delete(context.Background(), "product-1"); !errors.Is(err, domainErrors.ErrReferenced) {
		t.Fatalf("expected ErrReferenced, got %v", err)
	}
}
