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

// Place runs the full checkout workflow inside one transaction: customer
// resolution, order insert, item inserts, and per-item stock decrement. A
// failure at any step rolls the whole order back, so no partially placed
// order is ever visible.
func (r *orderRepository) Place(ctx context.Context, req model.CheckoutRequest) (*model.PlacedOrder, error) {
	var placed model.PlacedOrder

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		customerID, err := resolveCustomer(ctx, tx, req.Customer)
		if err != nil {
			return err
		}

		orderID := uuid.NewString()
		const insertOrder = `INSERT INTO orders (id, customer_id, status) VALUES ($1, $2, $3) RETURNING order_number`
		if err := tx.QueryRow(ctx, insertOrder, orderID, customerID, string(model.OrderStatusPending)).Scan(&placed.Number); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		const insertItem = `INSERT INTO order_items (id, order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4, $5)`
		for _, item := range req.Items {
			if _, err := tx.Exec(ctx, insertItem, uuid.NewString(), orderID, item.ProductID, item.Quantity, item.Price); err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
		}

		for _, item := range req.Items {
			if _, err := adjustStock(ctx, tx, item.ProductID, -item.Quantity); err != nil {
				if errors.Is(err, domainErrors.ErrInsufficientStock) || errors.Is(err, domainErrors.ErrNotFound) {
					return err
				}
				return fmt.Errorf("decrement stock for product %s: %w", item.ProductID, err)
			}
		}

		placed.OrderID = orderID
		placed.CustomerID = customerID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &placed, nil
}

// resolveCustomer finds a customer by exact phone match or creates a new one.
func resolveCustomer(ctx context.Context, tx pgx.Tx, details model.CustomerDetails) (string, error) {
	var customerID string
	err := tx.QueryRow(ctx, `SELECT id FROM customers WHERE phone=$1`, details.Phone).Scan(&customerID)
	if err == nil {
		return customerID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("find customer: %w", err)
	}

	customerID = uuid.NewString()
	const insert = `INSERT INTO customers (id, name, phone, address) VALUES ($1, $2, $3, $4)`
	if _, err := tx.Exec(ctx, insert, customerID, details.Name, details.Phone, details.Address); err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}
	return customerID, nil
}

const orderColumns = `o.id, o.order_number, o.customer_id, c.name, c.phone, o.status, o.created_at`

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + `
                   FROM orders o JOIN customers c ON c.id = o.customer_id
                   WHERE o.id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.Number, &o.CustomerID, &o.CustomerName, &o.Phone, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity, oi.price
                        FROM order_items oi JOIN products p ON p.id = oi.product_id
                        WHERE oi.order_id=$1`
	rows, err := r.storage.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + `
                   FROM orders o JOIN customers c ON c.id = o.customer_id
                   ORDER BY o.created_at DESC`
	return r.queryOrders(ctx, query)
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + `
                   FROM orders o JOIN customers c ON c.id = o.customer_id
                   WHERE o.customer_id=$1 ORDER BY o.created_at DESC`
	return r.queryOrders(ctx, query, customerID)
}

func (r *orderRepository) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + `
                   FROM orders o JOIN customers c ON c.id = o.customer_id
                   ORDER BY o.created_at DESC LIMIT $1`
	return r.queryOrders(ctx, query, limit)
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Number, &o.CustomerID, &o.CustomerName, &o.Phone, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	ids := make([]string, 0, len(result))
	index := make(map[string]int, len(result))
	for i, o := range result {
		ids = append(ids, o.ID)
		index[o.ID] = i
	}

	const itemsQuery = `SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity, oi.price
                        FROM order_items oi JOIN products p ON p.id = oi.product_id
                        WHERE oi.order_id = ANY($1)`
	itemRows, err := r.storage.pool.Query(ctx, itemsQuery, ids)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item model.OrderItem
		if err := itemRows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		if i, ok := index[item.OrderID]; ok {
			result[i].Items = append(result[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus applies a transition guarded by the expected current status so
// a concurrent transition cannot bypass the state machine.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, from, to model.OrderStatus) error {
	const query = `UPDATE orders SET status=$3 WHERE id=$1 AND status=$2`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, string(from), string(to))
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.storage.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id=$1)`, orderID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domainErrors.ErrNotFound
	}
	return domainErrors.ErrStatusConflict
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
