package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/domain/repository"
)

// ReturnUseCase processes post-sale returns.
type ReturnUseCase struct {
	returns repository.ReturnRepository
}

// NewReturnUseCase constructs ReturnUseCase.
func NewReturnUseCase(returns repository.ReturnRepository) *ReturnUseCase {
	return &ReturnUseCase{returns: returns}
}

// Create validates the submission and runs the return workflow. Returned
// quantities are capped at the remaining returnable quantity per order item.
func (u *ReturnUseCase) Create(ctx context.Context, req model.ReturnRequest) (*model.Return, error) {
	if req.OrderID == "" {
		return nil, fmt.Errorf("%w: order id is required", domainErrors.ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: return must contain at least one item", domainErrors.ErrValidation)
	}
	for i, item := range req.Items {
		if item.OrderItemID == "" {
			return nil, fmt.Errorf("%w: item %d is missing an order item reference", domainErrors.ErrValidation, i)
		}
		if item.ProductID == "" {
			return nil, fmt.Errorf("%w: item %d is missing a product", domainErrors.ErrValidation, i)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %d quantity must be at least 1", domainErrors.ErrValidation, i)
		}
	}
	return u.returns.Create(ctx, req)
}

// List returns all returns, newest first.
func (u *ReturnUseCase) List(ctx context.Context) ([]model.Return, error) {
	return u.returns.List(ctx)
}

// Get returns a single return with its items.
func (u *ReturnUseCase) Get(ctx context.Context, id string) (*model.Return, error) {
	return u.returns.GetByID(ctx, id)
}
