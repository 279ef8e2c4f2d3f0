package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/domain/repository"
)

// TemplateUseCase manages per-status WhatsApp message templates.
type TemplateUseCase struct {
	templates repository.TemplateRepository
}

// NewTemplateUseCase constructs TemplateUseCase.
func NewTemplateUseCase(templates repository.TemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{templates: templates}
}

// List returns the stored templates.
func (u *TemplateUseCase) List(ctx context.Context) ([]model.MessageTemplate, error) {
	return u.templates.List(ctx)
}

// Update replaces the template body for a status.
func (u *TemplateUseCase) Update(ctx context.Context, template model.MessageTemplate) error {
	if !template.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domainErrors.ErrValidation, template.Status)
	}
	if strings.TrimSpace(template.Body) == "" {
		return fmt.Errorf("%w: template body is required", domainErrors.ErrValidation)
	}
	return u.templates.Upsert(ctx, template)
}

// RenderForOrder builds the notification message for an order's current
// status, plus a wa.me link for the customer phone.
func (u *TemplateUseCase) RenderForOrder(ctx context.Context, order *model.Order) (message, link string, err error) {
	template, err := u.templates.GetByStatus(ctx, order.Status)
	if err != nil {
		return "", "", err
	}
	message = template.Render(order.CustomerName, order.Number)
	link = model.WhatsAppLink(order.Phone, message)
	return message, link, nil
}
