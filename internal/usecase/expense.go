package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/domain/repository"
)

// ExpenseUseCase manages bookkeeping entries.
type ExpenseUseCase struct {
	expenses repository.ExpenseRepository
}

// NewExpenseUseCase constructs ExpenseUseCase.
func NewExpenseUseCase(expenses repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenses: expenses}
}

// Create validates and stores an expense.
func (u *ExpenseUseCase) Create(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	if strings.TrimSpace(expense.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", domainErrors.ErrValidation)
	}
	if expense.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domainErrors.ErrValidation)
	}
	return u.expenses.Create(ctx, expense)
}

// List returns all expenses, newest first.
func (u *ExpenseUseCase) List(ctx context.Context) ([]model.Expense, error) {
	return u.expenses.List(ctx)
}

// Delete removes an expense.
func (u *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	return u.expenses.Delete(ctx, id)
}
