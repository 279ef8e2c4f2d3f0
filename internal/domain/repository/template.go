package repository

import (
	"context"

	"github.com/hazemhalim/dukkan/internal/domain/model"
)

// TemplateRepository describes persistence operations with message templates.
type TemplateRepository interface {
	List(ctx context.Context) ([]model.MessageTemplate, error)
	GetByStatus(ctx context.Context, status model.OrderStatus) (*model.MessageTemplate, error)
	Upsert(ctx context.Context, template model.MessageTemplate) error
}
