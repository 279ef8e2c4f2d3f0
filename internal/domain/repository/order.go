package repository

import (
	"context"

	"github.com/hazemhalim/dukkan/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Place runs the whole checkout workflow in one transaction: customer
	// resolution by phone, order insert, item inserts, and per-item stock
	// decrement. Any failure rolls everything back.
	Place(ctx context.Context, req model.CheckoutRequest) (*model.PlacedOrder, error)

	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error)
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)

	// UpdateStatus applies a status change guarded by the expected current
	// status, so concurrent transitions cannot skip state machine checks.
	UpdateStatus(ctx context.Context, orderID string, from, to model.OrderStatus) error

	Delete(ctx context.Context, id string) error
}
