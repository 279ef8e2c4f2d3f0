package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
)

var productTestColumns = []string{"id", "sku", "name", "description", "price", "stock", "image_urls", "colors", "created_at"}

func productRow(id string, stock int) *pgxmockv3.Rows {
	return pgxmockv3.NewRows(productTestColumns).
		AddRow(id, "SKU-1", "Tote bag", "Canvas tote", 250.0, stock,
			[]string{"https://cdn.example/img1.jpg"}, []string{"black"}, time.Now())
}

func TestProductRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Products()

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(pgxmockv3.AnyArg(), "SKU-1", "Tote bag", "Canvas tote", 250.0, 5,
			[]string{"https://cdn.example/img1.jpg"}, []string{"black"}).
		WillReturnRows(productRow("product-1", 5))

	created, err := repo.Create(context.Background(), model.Product{
		SKU:         "SKU-1",
		Name:        "Tote bag",
		Description: "Canvas tote",
		Price:       250,
		Stock:       5,
		ImageURLs:   []string{"https://cdn.example/img1.jpg"},
		Colors:      []string{"black"},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ID != "product-1" || created.Stock != 5 {
		t.Fatalf("unexpected product %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestProductRepositoryCreateDuplicateSKU(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO products").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := storage.Products().Create(context.Background(), model.Product{SKU: "SKU-1", Name: "Tote bag", Price: 1})
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestProductRepositoryGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Products()

	mock.ExpectQuery("SELECT id, sku, name, description, price, stock, image_urls, colors, created_at FROM products WHERE id=").
		WithArgs("product-1").
		WillReturnRows(productRow("product-1", 3))

	product, err := repo.GetByID(context.Background(), "product-1")
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if product.Name != "Tote bag" {
		t.Fatalf("unexpected product %+v", product)
	}

	mock.ExpectQuery("FROM products WHERE id=").
		WithArgs("missing").
		WillReturnRows(pgxmockv3.NewRows(productTestColumns))

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductRepositoryList(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	rows := pgxmockv3.NewRows(productTestColumns).
		AddRow("product-1", "SKU-1", "Tote bag", "", 250.0, 5, []string{}, []string{}, time.Now()).
		AddRow("product-2", "SKU-2", "Mug", "", 90.0, 0, []string{}, []string{}, time.Now())
	mock.ExpectQuery("FROM products ORDER BY created_at DESC").WillReturnRows(rows)

	products, err := storage.Products().List(context.Background())
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(products) != 2 || products[1].SKU != "SKU-2" {
		t.Fatalf("unexpected products %+v", products)
	}
}

func TestProductRepositoryListBelowStock(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("FROM products WHERE stock <=").
		WithArgs(3).
		WillReturnRows(productRow("product-1", 2))

	products, err := storage.Products().ListBelowStock(context.Background(), 3)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(products) != 1 || products[0].Stock != 2 {
		t.Fatalf("unexpected products %+v", products)
	}
}

func TestProductRepositoryUpdate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("UPDATE products").
		WithArgs("product-1", "SKU-1", "Tote bag", "Canvas tote", 300.0, []string{}, []string{}).
		WillReturnRows(productRow("product-1", 5))

	updated, err := storage.Products().Update(context.Background(), model.Product{
		ID:          "product-1",
		SKU:         "SKU-1",
		Name:        "Tote bag",
		Description: "Canvas tote",
		Price:       300,
		ImageURLs:   []string{},
		Colors:      []string{},
	})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Stock != 5 {
		t.Fatalf("stock should come from the row, got %d", updated.Stock)
	}
}

func TestProductRepositoryDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Products()
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM products").
		WithArgs("product-1").
		WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.Delete(ctx, "product-1"); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}

	mock.ExpectExec("DELETE FROM products").
		WithArgs("missing").
		WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	mock.ExpectExec("DELETE FROM products").
		WithArgs("product-1").
		WillReturnError(&pgconn.PgError{Code: "23503"})
	if err := repo.Delete(ctx, "product-1"); !errors.Is(err, domainErrors.ErrReferenced) {
		t.Fatalf("expected ErrReferenced, got %v", err)
	}
}

func TestProductRepositoryAdjustStock(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Products()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("UPDATE products SET stock = stock").
			WithArgs("product-1", -2).
			WillReturnRows(productRow("product-1", 3))

		product, err := repo.AdjustStock(ctx, "product-1", -2)
		if err != nil {
			t.Fatalf("adjust returned error: %v", err)
		}
		if product.Stock != 3 {
			t.Fatalf("unexpected stock %d", product.Stock)
		}
	})

	t.Run("floor violation", func(t *testing.T) {
		mock.ExpectQuery("UPDATE products SET stock = stock").
			WithArgs("product-1", -10).
			WillReturnRows(pgxmockv3.NewRows(productTestColumns))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("product-1").
			WillReturnRows(pgxmockv3.NewRows([]string{"exists"}).AddRow(true))

		if _, err := repo.AdjustStock(ctx, "product-1", -10); !errors.Is(err, domainErrors.ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		mock.ExpectQuery("UPDATE products SET stock = stock").
			WithArgs("missing", 1).
			WillReturnRows(pgxmockv3.NewRows(productTestColumns))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("missing").
			WillReturnRows(pgxmockv3.NewRows([]string{"exists"}).AddRow(false))

		if _, err := repo.AdjustStock(ctx, "missing", 1); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestProductRepositorySetStock(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("UPDATE products SET stock=").
		WithArgs("product-1", 42).
		WillReturnRows(productRow("product-1", 42))

	product, err := storage.Products().SetStock(context.Background(), "product-1", 42)
	if err != nil {
		t.Fatalf("set stock returned error: %v", err)
	}
	if product.Stock != 42 {
		t.Fatalf("unexpected stock %d", product.Stock)
	}
}
