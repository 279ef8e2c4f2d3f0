package postgres

import (
	"context"

	"github.com/hazemhalim/dukkan/internal/domain/model"
)

func (r *statsRepository) Counts(ctx context.Context) (customers, orders, products int64, err error) {
	const query = `SELECT
                   (SELECT COUNT(*) FROM customers),
                   (SELECT COUNT(*) FROM orders),
                   (SELECT COUNT(*) FROM products)`
	err = r.storage.pool.QueryRow(ctx, query).Scan(&customers, &orders, &products)
	return customers, orders, products, err
}

// TotalRevenue sums quantity*price across all order items. Totals are always
// derived from the price snapshots, never from current product prices.
func (r *statsRepository) TotalRevenue(ctx context.Context) (float64, error) {
	const query = `SELECT COALESCE(SUM(quantity * price), 0) FROM order_items`
	var total float64
	err := r.storage.pool.QueryRow(ctx, query).Scan(&total)
	return total, err
}

func (r *statsRepository) MonthlyRevenue(ctx context.Context, months int) ([]model.MonthlyRevenue, error) {
	const query = `SELECT date_trunc('month', o.created_at) AS month,
                          COALESCE(SUM(oi.quantity * oi.price), 0) AS revenue
                   FROM orders o JOIN order_items oi ON oi.order_id = o.id
                   GROUP BY month
                   ORDER BY month DESC
                   LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MonthlyRevenue
	for rows.Next() {
		var m model.MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.Revenue); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
