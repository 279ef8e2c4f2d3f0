package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/server/http/dto"
)

// respondError maps domain errors onto HTTP status codes with a uniform body.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrReferenced),
		errors.Is(err, domainErrors.ErrInsufficientStock),
		errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrStatusConflict),
		errors.Is(err, domainErrors.ErrReturnExceedsOrder):
		status = http.StatusConflict
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURLs:   p.ImageURLs,
		Colors:      p.Colors,
		CreatedAt:   p.CreatedAt,
	}
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	next := o.Status.NextStatuses()
	nextStatuses := make([]string, 0, len(next))
	for _, s := range next {
		nextStatuses = append(nextStatuses, string(s))
	}

	return dto.OrderResponse{
		ID:           o.ID,
		Number:       o.Number,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Status:       string(o.Status),
		Total:        o.Total(),
		Items:        items,
		NextStatuses: nextStatuses,
		CreatedAt:    o.CreatedAt,
	}
}

func toCustomerResponse(c model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func toReturnResponse(r model.Return) dto.ReturnResponse {
	items := make([]dto.ReturnItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, dto.ReturnItemResponse{
			ID:          item.ID,
			OrderItemID: item.OrderItemID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
		})
	}
	return dto.ReturnResponse{
		ID:          r.ID,
		OrderID:     r.OrderID,
		OrderNumber: r.OrderNumber,
		Reason:      r.Reason,
		Items:       items,
		CreatedAt:   r.CreatedAt,
	}
}

func toExpenseResponse(e model.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}
