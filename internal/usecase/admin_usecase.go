package usecase

import (
	"context"

	"shopsphere/internal/usecase/interfaces"
)

// Stock below this counts as "low" on the admin dashboard.
const lowStockThreshold = 10

// DashboardStats is the admin back-office summary.
type DashboardStats struct {
	UserCount     int     `json:"user_count"`
	ProductCount  int     `json:"product_count"`
	OrderCount    int     `json:"order_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	LowStockCount int     `json:"low_stock_count"`
}

// IAdminUseCase exposes back-office aggregates.
type IAdminUseCase interface {
	GetStats(ctx context.Context) (DashboardStats, error)
}

type AdminUseCase struct {
	users    interfaces.IUserRepository
	products interfaces.IProductRepository
	orders   interfaces.IOrderRepository
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(users interfaces.IUserRepository, products interfaces.IProductRepository, orders interfaces.IOrderRepository) *AdminUseCase {
	return &AdminUseCase{users: users, products: products, orders: orders}
}

func (u *AdminUseCase) GetStats(ctx context.Context) (DashboardStats, error) {
	stats := DashboardStats{}

	var err error
	if stats.UserCount, err = u.users.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.ProductCount, err = u.products.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.OrderCount, err = u.orders.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.TotalRevenue, err = u.orders.SumPaidRevenue(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.LowStockCount, err = u.products.CountLowStock(ctx, lowStockThreshold); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}
