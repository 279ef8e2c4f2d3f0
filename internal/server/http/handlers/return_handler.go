package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/server/http/dto"
)

// ReturnHandler manages post-sale return endpoints.
type ReturnHandler struct {
	facade ReturnFacade
}

// NewReturnHandler constructs ReturnHandler.
func NewReturnHandler(facade ReturnFacade) *ReturnHandler {
	return &ReturnHandler{facade: facade}
}

// List handles GET /api/admin/returns.
func (h *ReturnHandler) List(c *gin.Context) {
	returns, err := h.facade.Returns(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ReturnResponse, 0, len(returns))
	for _, r := range returns {
		response = append(response, toReturnResponse(r))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/admin/returns/:id.
func (h *ReturnHandler) Get(c *gin.Context) {
	ret, err := h.facade.Return(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReturnResponse(*ret))
}

// Create handles POST /api/admin/returns. Returned quantities are restocked
// as part of the same submission.
func (h *ReturnHandler) Create(c *gin.Context) {
	var req dto.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]model.ReturnRequestItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.ReturnRequestItem{
			OrderItemID: item.OrderItemID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
		})
	}

	ret, err := h.facade.CreateReturn(c.Request.Context(), model.ReturnRequest{
		OrderID: req.OrderID,
		Reason:  req.Reason,
		Items:   items,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toReturnResponse(*ret))
}
