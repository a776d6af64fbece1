package response

import "shopsphere/internal/usecase"

type AdminStatsResponse struct {
	Success       bool    `json:"success"`
	UserCount     int     `json:"userCount"`
	ProductCount  int     `json:"productCount"`
	OrderCount    int     `json:"orderCount"`
	TotalRevenue  float64 `json:"totalRevenue"`
	LowStockCount int     `json:"lowStockCount"`
}

func FromDashboardStats(s usecase.DashboardStats) AdminStatsResponse {
	return AdminStatsResponse{
		Success:       true,
		UserCount:     s.UserCount,
		ProductCount:  s.ProductCount,
		OrderCount:    s.OrderCount,
		TotalRevenue:  s.TotalRevenue,
		LowStockCount: s.LowStockCount,
	}
}
