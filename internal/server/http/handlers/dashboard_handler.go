package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hazemhalim/dukkan/internal/server/http/dto"
)

// DashboardHandler serves back-office KPI figures.
type DashboardHandler struct {
	facade       DashboardFacade
	recentOrders int
}

// NewDashboardHandler constructs DashboardHandler. recentOrders caps the
// recent order list included in the response.
func NewDashboardHandler(facade DashboardFacade, recentOrders int) *DashboardHandler {
	return &DashboardHandler{facade: facade, recentOrders: recentOrders}
}

// Stats handles GET /api/admin/dashboard.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.facade.Dashboard(c.Request.Context(), h.recentOrders)
	if err != nil {
		respondError(c, err)
		return
	}

	monthly := make([]dto.MonthlyRevenueResponse, 0, len(stats.MonthlyRevenue))
	for _, m := range stats.MonthlyRevenue {
		monthly = append(monthly, dto.MonthlyRevenueResponse{
			Month:   m.Month,
			Revenue: m.Revenue,
		})
	}

	recent := make([]dto.OrderResponse, 0, len(stats.RecentOrders))
	for _, o := range stats.RecentOrders {
		recent = append(recent, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		CustomerCount:  stats.CustomerCount,
		OrderCount:     stats.OrderCount,
		ProductCount:   stats.ProductCount,
		TotalRevenue:   stats.TotalRevenue,
		MonthlyRevenue: monthly,
		RecentOrders:   recent,
	})
}
