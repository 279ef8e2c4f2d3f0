package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
)

func validReturnRequest() model.ReturnRequest {
	return model.ReturnRequest{
		OrderID: "order-1",
		Reason:  "damaged",
		Items: []model.ReturnRequestItem{
			{OrderItemID: "item-1", ProductID: "product-1", Quantity: 1},
		},
	}
}

func TestReturnRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("order-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT oi.quantity").
		WithArgs("item-1", "order-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"remaining"}).AddRow(2))
	mock.ExpectQuery("INSERT INTO returns").
		WithArgs(pgxmockv3.AnyArg(), "order-1", "damaged").
		WillReturnRows(pgxmockv3.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectExec("INSERT INTO return_items").
		WithArgs(pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), "item-1", "product-1", 1).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectQuery("UPDATE products SET stock = stock").
		WithArgs("product-1", 1).
		WillReturnRows(productRow("product-1", 4))
	mock.ExpectCommit()

	created, err := storage.Returns().Create(context.Background(), validReturnRequest())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.OrderID != "order-1" || len(created.Items) != 1 || created.Items[0].Quantity != 1 {
		t.Fatalf("unexpected return %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestReturnRepositoryCreateExceedsOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	req := validReturnRequest()
	req.Items[0].Quantity = 3

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("order-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT oi.quantity").
		WithArgs("item-1", "order-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"remaining"}).AddRow(2))
	mock.ExpectRollback()

	if _, err := storage.Returns().Create(context.Background(), req); !errors.Is(err, domainErrors.ErrReturnExceedsOrder) {
		t.Fatalf("expected ErrReturnExceedsOrder, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestReturnRepositoryCreateOrderMissing(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("order-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	if _, err := storage.Returns().Create(context.Background(), validReturnRequest()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReturnRepositoryCreateUnknownOrderItem(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("order-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT oi.quantity").
		WithArgs("item-1", "order-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"remaining"}))
	mock.ExpectRollback()

	if _, err := storage.Returns().Create(context.Background(), validReturnRequest()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReturnRepositoryGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Returns()
	ctx := context.Background()

	mock.ExpectQuery("FROM returns r JOIN orders o").
		WithArgs("return-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "order_id", "order_number", "reason", "created_at"}).
			AddRow("return-1", "order-1", int64(1001), "damaged", time.Now()))
	mock.ExpectQuery("FROM return_items WHERE return_id=").
		WithArgs("return-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "return_id", "order_item_id", "product_id", "quantity"}).
			AddRow("ritem-1", "return-1", "item-1", "product-1", 1))

	ret, err := repo.GetByID(ctx, "return-1")
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if ret.OrderNumber != 1001 || len(ret.Items) != 1 {
		t.Fatalf("unexpected return %+v", ret)
	}

	mock.ExpectQuery("FROM returns r JOIN orders o").
		WithArgs("missing").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "order_id", "order_number", "reason", "created_at"}))

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReturnRepositoryList(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	rows := pgxmockv3.NewRows([]string{"id", "order_id", "order_number", "reason", "created_at"}).
		AddRow("return-1", "order-1", int64(1001), "damaged", time.Now()).
		AddRow("return-2", "order-2", int64(1002), "", time.Now())
	mock.ExpectQuery("FROM returns r JOIN orders o").WillReturnRows(rows)

	returns, err := storage.Returns().List(context.Background())
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(returns) != 2 || returns[1].OrderNumber != 1002 {
		t.Fatalf("unexpected returns %+v", returns)
	}
}
