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

var expenseTestColumns = []string{"id", "description", "category", "amount", "created_at"}

func TestExpenseRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO expenses").
		WithArgs(pgxmockv3.AnyArg(), "Packaging", "supplies", 120.0).
		WillReturnRows(pgxmockv3.NewRows(expenseTestColumns).
			AddRow("expense-1", "Packaging", "supplies", 120.0, time.Now()))

	created, err := storage.Expenses().Create(context.Background(), model.Expense{
		Description: "Packaging",
		Category:    "supplies",
		Amount:      120,
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ID != "expense-1" || created.Amount != 120 {
		t.Fatalf("unexpected expense %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestExpenseRepositoryList(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	rows := pgxmockv3.NewRows(expenseTestColumns).
		AddRow("expense-1", "Packaging", "supplies", 120.0, time.Now()).
		AddRow("expense-2", "Ads", "marketing", 300.0, time.Now())
	mock.ExpectQuery("FROM expenses ORDER BY created_at DESC").WillReturnRows(rows)

	expenses, err := storage.Expenses().List(context.Background())
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(expenses) != 2 || expenses[1].Category != "marketing" {
		t.Fatalf("unexpected expenses %+v", expenses)
	}
}

func TestExpenseRepositoryDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Expenses()
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM expenses").
		WithArgs("expense-1").
		WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.Delete(ctx, "expense-1"); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}

	mock.ExpectExec("DELETE FROM expenses").
		WithArgs("missing").
		WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTemplateRepositoryList(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	rows := pgxmockv3.NewRows([]string{"status", "body"}).
		AddRow(string(model.OrderStatusPending), "Hi {customer_name}").
		AddRow(string(model.OrderStatusShipped), "Order {order_number} shipped")
	mock.ExpectQuery("SELECT status, body FROM message_templates ORDER BY status").WillReturnRows(rows)

	templates, err := storage.Templates().List(context.Background())
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(templates) != 2 || templates[1].Status != model.OrderStatusShipped {
		t.Fatalf("unexpected templates %+v", templates)
	}
}

func TestTemplateRepositoryGetByStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Templates()
	ctx := context.Background()

	mock.ExpectQuery("FROM message_templates WHERE status=").
		WithArgs(string(model.OrderStatusConfirmed)).
		WillReturnRows(pgxmockv3.NewRows([]string{"status", "body"}).
			AddRow(string(model.OrderStatusConfirmed), "Order {order_number} confirmed"))

	template, err := repo.GetByStatus(ctx, model.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if template.Body != "Order {order_number} confirmed" {
		t.Fatalf("unexpected template %+v", template)
	}

	mock.ExpectQuery("FROM message_templates WHERE status=").
		WithArgs(string(model.OrderStatusCancelled)).
		WillReturnRows(pgxmockv3.NewRows([]string{"status", "body"}))

	if _, err := repo.GetByStatus(ctx, model.OrderStatusCancelled); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTemplateRepositoryUpsert(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO message_templates").
		WithArgs(string(model.OrderStatusShipped), "On the way!").
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))

	err := storage.Templates().Upsert(context.Background(), model.MessageTemplate{
		Status: model.OrderStatusShipped,
		Body:   "On the way!",
	})
	if err != nil {
		t.Fatalf("upsert returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
