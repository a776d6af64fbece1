package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidOrderItem   = errors.New("invalid order item")
	ErrInvalidAddress     = errors.New("invalid shipping address")
	ErrInvalidPaymentMode = errors.New("invalid payment method")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrOrderAlreadyPaid   = errors.New("order already paid")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// NewOrderInput is the checkout command: product selections plus delivery
// and payment choices. Monetary amounts are intentionally absent; pricing
// is recomputed from the product table.
type NewOrderInput struct {
	Items           []NewOrderItem
	ShippingAddress entities.ShippingAddress
	PaymentMethod   entities.PaymentMethod
	CouponCode      string
	Discount        float64
}

type NewOrderItem struct {
	ProductID string
	Quantity  int
	Variant   entities.ItemVariant
}

// IOrderUseCase exposes order placement and lifecycle operations.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, userID string, in NewOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, id string, requester entities.User) (entities.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]entities.Order, error)
	MarkPaid(ctx context.Context, id, userID string, result entities.PaymentResult) (entities.Order, error)
	ListAllOrders(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

type OrderUseCase struct {
	orders   interfaces.IOrderRepository
	products interfaces.IProductRepository
	carts    interfaces.ICartRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, products interfaces.IProductRepository, carts interfaces.ICartRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, carts: carts}
}

// CreateOrder validates stock, snapshots the catalog state into line items,
// computes totals server-side, decrements stock and clears the cart.
func (u *OrderUseCase) CreateOrder(ctx context.Context, userID string, in NewOrderInput) (entities.Order, error) {
	if len(in.Items) == 0 {
		return entities.Order{}, ErrEmptyOrder
	}
	if in.PaymentMethod != entities.PaymentMethodCard && in.PaymentMethod != entities.PaymentMethodCOD {
		return entities.Order{}, ErrInvalidPaymentMode
	}
	addr := in.ShippingAddress
	if addr.Name == "" || addr.Phone == "" || addr.Street == "" || addr.City == "" ||
		addr.State == "" || addr.ZipCode == "" || addr.Country == "" {
		return entities.Order{}, ErrInvalidAddress
	}

	items := make([]entities.OrderItem, 0, len(in.Items))
	itemsPrice := 0.0
	for _, reqItem := range in.Items {
		if strings.TrimSpace(reqItem.ProductID) == "" || reqItem.Quantity < 1 {
			return entities.Order{}, ErrInvalidOrderItem
		}
		product, err := u.products.GetByID(ctx, reqItem.ProductID)
		if err != nil {
			return entities.Order{}, err
		}
		if product.ID == "" || !product.Active {
			return entities.Order{}, ErrProductNotFound
		}
		if product.Stock < reqItem.Quantity {
			return entities.Order{}, ErrInsufficientStock
		}

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		items = append(items, entities.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Image:     image,
			Price:     product.Price,
			Quantity:  reqItem.Quantity,
			Variant:   reqItem.Variant,
		})
		itemsPrice += product.Price * float64(reqItem.Quantity)
	}

	discount := in.Discount
	if discount < 0 || discount > itemsPrice {
		discount = 0
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           items,
		ShippingAddress: addr,
		PaymentMethod:   in.PaymentMethod,
		ItemsPrice:      itemsPrice,
		ShippingPrice:   0,
		TaxPrice:        0,
		DiscountPrice:   discount,
		CouponCode:      strings.TrimSpace(in.CouponCode),
		TotalPrice:      itemsPrice - discount,
		Status:          entities.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for _, item := range order.Items {
		if _, err := u.products.UpdateStock(ctx, item.ProductID, -item.Quantity); err != nil {
			return entities.Order{}, err
		}
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}

	// Checkout consumed the cart; a failure here must not fail the order.
	if _, err := u.clearCart(ctx, userID); err != nil {
		log.Printf("[order][usecase] cart clear failed after checkout user_id=%s err=%v", userID, err)
	}
	return created, nil
}

func (u *OrderUseCase) clearCart(ctx context.Context, userID string) (entities.Cart, error) {
	cart, err := u.carts.Get(ctx, userID)
	if err != nil || cart.UserID == "" {
		return cart, err
	}
	cart.Items = []entities.CartItem{}
	cart.CouponCode = ""
	cart.Discount = 0
	cart.UpdatedAt = time.Now().UTC()
	return u.carts.Save(ctx, cart)
}

// GetOrder returns the order only to its owner or an admin; anyone else
// gets not-found rather than a hint the order exists.
func (u *OrderUseCase) GetOrder(ctx context.Context, id string, requester entities.User) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.UserID != requester.ID && requester.Role != entities.RoleAdmin {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *OrderUseCase) ListUserOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	return u.orders.ListByUserID(ctx, userID)
}

func (u *OrderUseCase) MarkPaid(ctx context.Context, id, userID string, result entities.PaymentResult) (entities.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" || order.UserID != userID {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.Paid() {
		return entities.Order{}, ErrOrderAlreadyPaid
	}
	return u.orders.MarkPaid(ctx, id, result, time.Now().UTC())
}

func (u *OrderUseCase) ListAllOrders(ctx context.Context) ([]entities.Order, error) {
	return u.orders.ListAll(ctx)
}

// UpdateStatus is the admin transition. Cancelling restores the stock the
// order had reserved; delivering stamps deliveredAt.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	if !entities.ValidOrderStatus(status) {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	if status == entities.OrderStatusCancelled && order.Status != entities.OrderStatusCancelled {
		for _, item := range order.Items {
			if _, err := u.products.UpdateStock(ctx, item.ProductID, item.Quantity); err != nil {
				log.Printf("[order][usecase] stock restore failed order_id=%s product_id=%s err=%v", id, item.ProductID, err)
			}
		}
	}

	var deliveredAt *time.Time
	if status == entities.OrderStatusDelivered {
		now := time.Now().UTC()
		deliveredAt = &now
	}
	return u.orders.UpdateStatus(ctx, id, status, deliveredAt)
}
