package entities

import "time"

// OrderStatus represents the fulfillment lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known fulfillment status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentMethod selects how an order is paid.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "mercadopago"
	PaymentMethodCOD  PaymentMethod = "cod"
)

// ItemVariant is the concrete option combination a line item was bought in.
type ItemVariant struct {
	Size    string `json:"size,omitempty"`
	Color   string `json:"color,omitempty"`
	Storage string `json:"storage,omitempty"`
}

// OrderItem is a line item: a product reference plus a snapshot of the
// name/image/price at purchase time, so later catalog edits do not rewrite
// order history.
type OrderItem struct {
	ProductID string      `json:"product_id"`
	Name      string      `json:"name"`
	Image     string      `json:"image"`
	Price     float64     `json:"price"`
	Quantity  int         `json:"quantity"`
	Variant   ItemVariant `json:"variant"`
}

// ShippingAddress is the delivery destination captured at checkout.
type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// PaymentResult records the provider outcome attached to a paid order.
type PaymentResult struct {
	ID           string `json:"id,omitempty"`
	Status       string `json:"status,omitempty"`
	UpdateTime   string `json:"update_time,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
}

// Order is a placed order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - created_at is stored both as RFC3339Nano (display) and as a numeric
//     epoch attribute so the trailing-window forecast filter can use a
//     server-side range condition.
//
// Monetary fields are all recomputed server-side at creation time; the
// product table is the source of truth for amounts.
type Order struct {
	UserID          string          `json:"user_id"`
	ID              string          `json:"id"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	PaymentResult   PaymentResult   `json:"payment_result"`
	ItemsPrice      float64         `json:"items_price"`
	ShippingPrice   float64         `json:"shipping_price"`
	TaxPrice        float64         `json:"tax_price"`
	DiscountPrice   float64         `json:"discount_price"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	TotalPrice      float64         `json:"total_price"`
	Status          OrderStatus     `json:"status"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Paid reports whether a payment has been recorded for the order.
func (o Order) Paid() bool {
	return o.PaidAt != nil
}
