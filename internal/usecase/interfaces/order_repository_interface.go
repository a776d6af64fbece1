package interfaces

import (
	"context"
	"time"

	"shopsphere/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// SumProductUnitsSince answers the forecast's only question about history:
// total units of one product sold in non-cancelled orders created at or
// after the given instant. The product filter lives at the store boundary
// so unrelated orders never cross it.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, deliveredAt *time.Time) (entities.Order, error)
	MarkPaid(ctx context.Context, id string, result entities.PaymentResult, paidAt time.Time) (entities.Order, error)
	SumProductUnitsSince(ctx context.Context, productID string, since time.Time) (int, error)
	Count(ctx context.Context) (int, error)
	SumPaidRevenue(ctx context.Context) (float64, error)
}
