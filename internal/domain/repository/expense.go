package repository

import (
	"context"

	"github.com/hazemhalim/dukkan/internal/domain/model"
)

// ExpenseRepository describes persistence operations with expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense model.Expense) (*model.Expense, error)
	List(ctx context.Context) ([]model.Expense, error)
	Delete(ctx context.Context, id string) error
}
