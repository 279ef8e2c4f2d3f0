package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/server/http/dto"
)

// TemplateHandler manages notification template endpoints.
type TemplateHandler struct {
	facade TemplateFacade
}

// NewTemplateHandler constructs TemplateHandler.
func NewTemplateHandler(facade TemplateFacade) *TemplateHandler {
	return &TemplateHandler{facade: facade}
}

// List handles GET /api/admin/templates.
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.facade.Templates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		response = append(response, dto.TemplateResponse{
			Status: string(t.Status),
			Body:   t.Body,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/admin/templates/:status.
func (h *TemplateHandler) Update(c *gin.Context) {
	var req dto.TemplateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	template := model.MessageTemplate{
		Status: model.OrderStatus(c.Param("status")),
		Body:   req.Body,
	}
	if err := h.facade.UpdateTemplate(c.Request.Context(), template); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TemplateResponse{
		Status: string(template.Status),
		Body:   template.Body,
	})
}

// Preview handles GET /api/admin/orders/:id/notification, rendering the
// current-status template for the order without sending anything.
func (h *TemplateHandler) Preview(c *gin.Context) {
	message, link, err := h.facade.PreviewNotification(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NotificationPreviewResponse{
		Message:      message,
		WhatsAppLink: link,
	})
}
