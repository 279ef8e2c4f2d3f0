package repository

import (
	"context"

	"github.com/hazemhalim/dukkan/internal/domain/model"
)

// ReturnRepository describes persistence operations with returns.
type ReturnRepository interface {
	// Create runs the return workflow in one transaction: return insert,
	// item inserts, returnable-quantity checks, and per-item stock
	// increment. Any failure rolls everything back.
	Create(ctx context.Context, req model.ReturnRequest) (*model.Return, error)

	GetByID(ctx context.Context, id string) (*model.Return, error)
	List(ctx context.Context) ([]model.Return, error)
}
