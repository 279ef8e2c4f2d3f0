package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/server/http/dto"
)

// StorefrontHandler serves the public shop endpoints.
type StorefrontHandler struct {
	facade StorefrontFacade
}

// NewStorefrontHandler constructs StorefrontHandler.
func NewStorefrontHandler(facade StorefrontFacade) *StorefrontHandler {
	return &StorefrontHandler{facade: facade}
}

// ListProducts handles GET /api/products.
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/products/:id.
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	product, err := h.facade.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Checkout handles POST /api/checkout.
func (h *StorefrontHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]model.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.CheckoutItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	placed, err := h.facade.Checkout(c.Request.Context(), model.CheckoutRequest{
		Customer: model.CustomerDetails{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
		},
		Items: items,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		OrderID:     placed.OrderID,
		OrderNumber: placed.Number,
	})
}

// GetOrder handles GET /api/orders/:id (order-success view).
func (h *StorefrontHandler) GetOrder(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}
