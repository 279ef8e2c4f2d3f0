package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/domain/repository"
)

// CustomerUseCase manages the customer directory.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	orders    repository.OrderRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository, orders repository.OrderRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, orders: orders}
}

// Create validates and stores a new customer.
func (u *CustomerUseCase) Create(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	if strings.TrimSpace(customer.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domainErrors.ErrValidation)
	}
	return u.customers.Create(ctx, customer)
}

// List returns all customers, newest first.
func (u *CustomerUseCase) List(ctx context.Context) ([]model.Customer, error) {
	return u.customers.List(ctx)
}

// Get returns a customer together with their order history.
func (u *CustomerUseCase) Get(ctx context.Context, id string) (*model.Customer, []model.Order, error) {
	customer, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	orders, err := u.orders.ListByCustomer(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return customer, orders, nil
}

// Delete removes a customer; the storage layer rejects the delete while
// orders still reference them.
func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return u.customers.Delete(ctx, id)
}
