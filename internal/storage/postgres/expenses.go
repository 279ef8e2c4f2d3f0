package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
)

func (r *expenseRepository) Create(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	const query = `INSERT INTO expenses (id, description, category, amount)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, description, category, amount, created_at`
	id := uuid.NewString()
	var e model.Expense
	err := r.storage.pool.QueryRow(ctx, query, id, expense.Description, expense.Category, expense.Amount).
		Scan(&e.ID, &e.Description, &e.Category, &e.Amount, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expenseRepository) List(ctx context.Context) ([]model.Expense, error) {
	const query = `SELECT id, description, category, amount, created_at FROM expenses ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Expense
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Category, &e.Amount, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *templateRepository) List(ctx context.Context) ([]model.MessageTemplate, error) {
	const query = `SELECT status, body FROM message_templates ORDER BY status`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MessageTemplate
	for rows.Next() {
		var t model.MessageTemplate
		if err := rows.Scan(&t.Status, &t.Body); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *templateRepository) GetByStatus(ctx context.Context, status model.OrderStatus) (*model.MessageTemplate, error) {
	const query = `SELECT status, body FROM message_templates WHERE status=$1`
	var t model.MessageTemplate
	err := r.storage.pool.QueryRow(ctx, query, string(status)).Scan(&t.Status, &t.Body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *templateRepository) Upsert(ctx context.Context, template model.MessageTemplate) error {
	const query = `INSERT INTO message_templates (status, body) VALUES ($1, $2)
                   ON CONFLICT (status) DO UPDATE SET body = EXCLUDED.body`
	_, err := r.storage.pool.Exec(ctx, query, string(template.Status), template.Body)
	return err
}
