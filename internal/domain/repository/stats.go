package repository

import (
	"context"

	"github.com/hazemhalim/dukkan/internal/domain/model"
)

// StatsRepository aggregates figures for the admin dashboard.
type StatsRepository interface {
	Counts(ctx context.Context) (customers, orders, products int64, err error)
	TotalRevenue(ctx context.Context) (float64, error)
	MonthlyRevenue(ctx context.Context, months int) ([]model.MonthlyRevenue, error)
}
