package repository

import (
	"context"

	"github.com/hazemhalim/dukkan/internal/domain/model"
)

// CustomerRepository describes persistence operations with customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer model.Customer) (*model.Customer, error)
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Delete(ctx context.Context, id string) error
}
