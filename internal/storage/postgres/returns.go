package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/hazemhalim/dukkan/internal/domain/errors"
	"github.com/hazemhalim/dukkan/internal/domain/model"
)

// Create runs the return workflow inside one transaction: returnable-quantity
// checks, return insert, item inserts, and per-item stock increment. It is
// the mirror image of order placement, with the same all-or-nothing policy.
func (r *returnRepository) Create(ctx context.Context, req model.ReturnRequest) (*model.Return, error) {
	var created model.Return

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var orderExists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id=$1)`, req.OrderID).Scan(&orderExists); err != nil {
			return fmt.Errorf("check order: %w", err)
		}
		if !orderExists {
			return domainErrors.ErrNotFound
		}

		for _, item := range req.Items {
			remaining, err := remainingReturnable(ctx, tx, req.OrderID, item.OrderItemID)
			if err != nil {
				return err
			}
			if item.Quantity > remaining {
				return domainErrors.ErrReturnExceedsOrder
			}
		}

		returnID := uuid.NewString()
		const insertReturn = `INSERT INTO returns (id, order_id, reason) VALUES ($1, $2, $3) RETURNING created_at`
		if err := tx.QueryRow(ctx, insertReturn, returnID, req.OrderID, req.Reason).Scan(&created.CreatedAt); err != nil {
			return fmt.Errorf("create return: %w", err)
		}

		const insertItem = `INSERT INTO return_items (id, return_id, order_item_id, product_id, quantity) VALUES ($1, $2, $3, $4, $5)`
		for _, item := range req.Items {
			itemID := uuid.NewString()
			if _, err := tx.Exec(ctx, insertItem, itemID, returnID, item.OrderItemID, item.ProductID, item.Quantity); err != nil {
				return fmt.Errorf("insert return item: %w", err)
			}
			created.Items = append(created.Items, model.ReturnItem{
				ID:          itemID,
				ReturnID:    returnID,
				OrderItemID: item.OrderItemID,
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
			})
		}

		for _, item := range req.Items {
			if _, err := adjustStock(ctx, tx, item.ProductID, item.Quantity); err != nil {
				return fmt.Errorf("increment stock for product %s: %w", item.ProductID, err)
			}
		}

		created.ID = returnID
		created.OrderID = req.OrderID
		created.Reason = req.Reason
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// remainingReturnable is the ordered quantity minus everything already
// returned for the order item.
func remainingReturnable(ctx context.Context, q querier, orderID, orderItemID string) (int, error) {
	const query = `SELECT oi.quantity - COALESCE((SELECT SUM(ri.quantity) FROM return_items ri WHERE ri.order_item_id = oi.id), 0)
                   FROM order_items oi
                   WHERE oi.id=$1 AND oi.order_id=$2`
	var remaining int
	err := q.QueryRow(ctx, query, orderItemID, orderID).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrNotFound
		}
		return 0, fmt.Errorf("remaining returnable: %w", err)
	}
	return remaining, nil
}

func (r *returnRepository) GetByID(ctx context.Context, id string) (*model.Return, error) {
	const query = `SELECT r.id, r.order_id, o.order_number, r.reason, r.created_at
                   FROM returns r JOIN orders o ON o.id = r.order_id
                   WHERE r.id=$1`
	var ret model.Return
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&ret.ID, &ret.OrderID, &ret.OrderNumber, &ret.Reason, &ret.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `SELECT id, return_id, order_item_id, product_id, quantity FROM return_items WHERE return_id=$1`
	rows, err := r.storage.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.ReturnItem
		if err := rows.Scan(&item.ID, &item.ReturnID, &item.OrderItemID, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		ret.Items = append(ret.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (r *returnRepository) List(ctx context.Context) ([]model.Return, error) {
	const query = `SELECT r.id, r.order_id, o.order_number, r.reason, r.created_at
                   FROM returns r JOIN orders o ON o.id = r.order_id
                   ORDER BY r.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Return
	for rows.Next() {
		var ret model.Return
		if err := rows.Scan(&ret.ID, &ret.OrderID, &ret.OrderNumber, &ret.Reason, &ret.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, ret)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
