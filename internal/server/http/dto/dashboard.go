package dto

import "time"

// MonthlyRevenueResponse is one month bucket of revenue.
type MonthlyRevenueResponse struct {
	Month   time.Time `json:"month"`
	Revenue float64   `json:"revenue"`
}

// DashboardResponse aggregates back-office KPI figures.
type DashboardResponse struct {
	CustomerCount  int64                    `json:"customer_count"`
	OrderCount     int64                    `json:"order_count"`
	ProductCount   int64                    `json:"product_count"`
	TotalRevenue   float64                  `json:"total_revenue"`
	MonthlyRevenue []MonthlyRevenueResponse `json:"monthly_revenue"`
	RecentOrders   []OrderResponse          `json:"recent_orders"`
}
