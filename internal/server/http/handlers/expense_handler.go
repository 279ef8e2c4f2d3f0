package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/server/http/dto"
)

// ExpenseHandler manages bookkeeping endpoints.
type ExpenseHandler struct {
	facade ExpenseFacade
}

// NewExpenseHandler constructs ExpenseHandler.
func NewExpenseHandler(facade ExpenseFacade) *ExpenseHandler {
	return &ExpenseHandler{facade: facade}
}

// List handles GET /api/admin/expenses.
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.facade.Expenses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		response = append(response, toExpenseResponse(e))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/admin/expenses.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	expense, err := h.facade.CreateExpense(c.Request.Context(), model.Expense{
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toExpenseResponse(*expense))
}

// Delete handles DELETE /api/admin/expenses/:id.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
