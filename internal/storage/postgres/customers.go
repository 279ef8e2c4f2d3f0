package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
)

const customerColumns = `id, name, phone, email, address, created_at`

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Create(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	const query = `INSERT INTO customers (id, name, phone, email, address)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING ` + customerColumns
	id := uuid.NewString()
	return scanCustomer(r.storage.pool.QueryRow(ctx, query, id, customer.Name, customer.Phone, customer.Email, customer.Address))
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers WHERE id=$1`
	return scanCustomer(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers WHERE phone=$1`
	return scanCustomer(r.storage.pool.QueryRow(ctx, query, phone))
}

func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domainErrors.ErrReferenced
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
