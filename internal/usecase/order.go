package usecase

import (
	"context"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic for the back office.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// List returns all orders, newest first, with derived totals available via
// Order.Total.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Get returns a single order with its line items.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// ListByCustomer returns the order history of a customer.
func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID)
}

// ChangeStatus applies a fulfillment transition. The state machine table is
// enforced here, and the update is additionally guarded against concurrent
// transitions at the storage layer.
func (u *OrderUseCase) ChangeStatus(ctx context.Context, orderID string, to model.OrderStatus) (*model.Order, error) {
	if !to.Valid() {
		return nil, domainErrors.ErrInvalidTransition
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(to) {
		return nil, domainErrors.ErrInvalidTransition
	}

	if err := u.orders.UpdateStatus(ctx, orderID, order.Status, to); err != nil {
		return nil, err
	}

	order.Status = to
	return order, nil
}

// Delete removes an order; its items are removed by the storage layer.
func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	return u.orders.Delete(ctx, id)
}
