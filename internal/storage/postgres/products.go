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

const productColumns = `id, sku, name, description, price, stock, image_urls, colors, created_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURLs, &p.Colors, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (id, sku, name, description, price, stock, image_urls, colors)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING ` + productColumns
	id := uuid.NewString()
	row := r.storage.pool.QueryRow(ctx, query, id, product.SKU, product.Name, product.Description,
		product.Price, product.Stock, product.ImageURLs, product.Colors)
	created, err := scanProduct(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	return r.queryProducts(ctx, query)
}

func (r *productRepository) ListBelowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE stock <= $1 ORDER BY stock ASC`
	return r.queryProducts(ctx, query, threshold)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURLs, &p.Colors, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	const query = `UPDATE products
                   SET sku=$2, name=$3, description=$4, price=$5, image_urls=$6, colors=$7
                   WHERE id=$1
                   RETURNING ` + productColumns
	row := r.storage.pool.QueryRow(ctx, query, product.ID, product.SKU, product.Name,
		product.Description, product.Price, product.ImageURLs, product.Colors)
	updated, err := scanProduct(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return updated, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
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

// AdjustStock applies a signed delta in a single atomic statement. The WHERE
// guard keeps stock from going below zero under concurrent orders.
func (r *productRepository) AdjustStock(ctx context.Context, id string, delta int) (*model.Product, error) {
	return adjustStock(ctx, r.storage.pool, id, delta)
}

func adjustStock(ctx context.Context, q querier, id string, delta int) (*model.Product, error) {
	const query = `UPDATE products SET stock = stock + $2
                   WHERE id=$1 AND stock + $2 >= 0
                   RETURNING ` + productColumns
	product, err := scanProduct(q.QueryRow(ctx, query, id, delta))
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	// Zero rows means either a missing product or a floor violation.
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id=$1)`, id).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, domainErrors.ErrNotFound
	}
	return nil, domainErrors.ErrInsufficientStock
}

// SetStock overwrites the stock level directly.
func (r *productRepository) SetStock(ctx context.Context, id string, stock int) (*model.Product, error) {
	const query = `UPDATE products SET stock=$2 WHERE id=$1 RETURNING ` + productColumns
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id, stock))
}
