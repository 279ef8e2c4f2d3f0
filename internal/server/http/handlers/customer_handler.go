package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/server/http/dto"
)

// CustomerHandler manages the customer directory endpoints.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// List handles GET /api/admin/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.facade.Customers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		response = append(response, toCustomerResponse(cust))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/admin/customers/:id, returning the customer together
// with their order history.
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, orders, err := h.facade.Customer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	history := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		history = append(history, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, dto.CustomerDetailResponse{
		Customer: toCustomerResponse(*customer),
		Orders:   history,
	})
}

// Create handles POST /api/admin/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	customer, err := h.facade.CreateCustomer(c.Request.Context(), model.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCustomerResponse(*customer))
}

// Delete handles DELETE /api/admin/customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
