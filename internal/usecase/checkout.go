package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/domain/repository"
)

// CheckoutUseCase places storefront orders.
type CheckoutUseCase struct {
	orders repository.OrderRepository
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(orders repository.OrderRepository) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders}
}

// PlaceOrder validates the checkout request and runs the placement workflow.
// Unit prices are taken from the request as submitted, mirroring the snapshot
// captured by the cart at browse time.
func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, req model.CheckoutRequest) (*model.PlacedOrder, error) {
	if err := validateCheckout(req); err != nil {
		return nil, err
	}
	return u.orders.Place(ctx, req)
}

func validateCheckout(req model.CheckoutRequest) error {
	if strings.TrimSpace(req.Customer.Name) == "" {
		return fmt.Errorf("%w: customer name is required", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(req.Customer.Phone) == "" {
		return fmt.Errorf("%w: customer phone is required", domainErrors.ErrValidation)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", domainErrors.ErrValidation)
	}
	for i, item := range req.Items {
		if item.ProductID == "" {
			return fmt.Errorf("%w: item %d is missing a product", domainErrors.ErrValidation, i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item %d quantity must be at least 1", domainErrors.ErrValidation, i)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: item %d price must not be negative", domainErrors.ErrValidation, i)
		}
	}
	return nil
}
