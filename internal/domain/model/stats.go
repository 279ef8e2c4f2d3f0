package model

import "time"

// DashboardStats aggregates back-office KPI figures.
type DashboardStats struct {
	CustomerCount  int64
	OrderCount     int64
	ProductCount   int64
	TotalRevenue   float64
	MonthlyRevenue []MonthlyRevenue
	RecentOrders   []Order
}

// MonthlyRevenue is one month bucket of order item revenue.
type MonthlyRevenue struct {
	Month   time.Time
	Revenue float64
}
