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

var customerTestColumns = []string{"id", "name", "phone", "email", "address", "created_at"}

func customerRow(id string) *pgxmockv3.Rows {
	return pgxmockv3.NewRows(customerTestColumns).
		AddRow(id, "Mona", "+201000000001", "mona@example.com", "Cairo", time.Now())
}

func TestCustomerRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO customers").
		WithArgs(pgxmockv3.AnyArg(), "Mona", "+201000000001", "mona@example.com", "Cairo").
		WillReturnRows(customerRow("customer-1"))

	created, err := storage.Customers().Create(context.Background(), model.Customer{
		Name:    "Mona",
		Phone:   "+201000000001",
		Email:   "mona@example.com",
		Address: "Cairo",
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ID != "customer-1" {
		t.Fatalf("unexpected customer %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCustomerRepositoryGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Customers()
	ctx := context.Background()

	mock.ExpectQuery("FROM customers WHERE id=").
		WithArgs("customer-1").
		WillReturnRows(customerRow("customer-1"))

	customer, err := repo.GetByID(ctx, "customer-1")
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if customer.Phone != "+201000000001" {
		t.Fatalf("unexpected customer %+v", customer)
	}

	mock.ExpectQuery("FROM customers WHERE id=").
		WithArgs("missing").
		WillReturnRows(pgxmockv3.NewRows(customerTestColumns))

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCustomerRepositoryGetByPhone(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("FROM customers WHERE phone=").
		WithArgs("+201000000001").
		WillReturnRows(customerRow("customer-1"))

	customer, err := storage.Customers().GetByPhone(context.Background(), "+201000000001")
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if customer.ID != "customer-1" {
		t.Fatalf("unexpected customer %+v", customer)
	}
}

func TestCustomerRepositoryList(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	rows := pgxmockv3.NewRows(customerTestColumns).
		AddRow("customer-1", "Mona", "+201000000001", "", "", time.Now()).
		AddRow("customer-2", "Omar", "+201000000002", "", "", time.Now())
	mock.ExpectQuery("FROM customers ORDER BY created_at DESC").WillReturnRows(rows)

	customers, err := storage.Customers().List(context.Background())
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(customers) != 2 || customers[1].Name != "Omar" {
		t.Fatalf("unexpected customers %+v", customers)
	}
}

func TestCustomerRepositoryDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Customers()
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM customers").
		WithArgs("customer-1").
		WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.Delete(ctx, "customer-1"); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}

	mock.ExpectExec("DELETE FROM customers").
		WithArgs("missing").
		WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	mock.ExpectExec("DELETE FROM customers").
		WithArgs("customer-1").
		WillReturnError(&pgconn.PgError{Code: "23503"})
	if err := repo.Delete(ctx, "customer-1"); !errors.Is(err, domainErrors.ErrReferenced) {
		t.Fatalf("expected ErrReferenced, got %v", err)
	}
}
