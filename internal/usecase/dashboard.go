package usecase

import (
	"context"

	"github.com/hazemhalim/dukkan/internal/domain/model"
	"github.com/hazemhalim/dukkan/internal/domain/repository"
)

const monthlyRevenueWindow = 12

// DashboardUseCase aggregates KPI figures for the admin landing page.
type DashboardUseCase struct {
	stats  repository.StatsRepository
	orders repository.OrderRepository
}

// NewDashboardUseCase constructs DashboardUseCase.
func NewDashboardUseCase(stats repository.StatsRepository, orders repository.OrderRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, orders: orders}
}

// Stats gathers dashboard figures.
func (u *DashboardUseCase) Stats(ctx context.Context, recentLimit int) (*model.DashboardStats, error) {
	customers, orders, products, err := u.stats.Counts(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := u.stats.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	monthly, err := u.stats.MonthlyRevenue(ctx, monthlyRevenueWindow)
	if err != nil {
		return nil, err
	}

	recent, err := u.orders.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	return &model.DashboardStats{
		CustomerCount:  customers,
		OrderCount:     orders,
		ProductCount:   products,
		TotalRevenue:   revenue,
		MonthlyRevenue: monthly,
		RecentOrders:   recent,
	}, nil
}
