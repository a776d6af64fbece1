package entities

import "time"

// CartItem is a product selection waiting for checkout.
type CartItem struct {
	ID        string      `json:"id"`
	ProductID string      `json:"product_id"`
	Quantity  int         `json:"quantity"`
	Variant   ItemVariant `json:"variant"`
}

// Cart is the per-user shopping cart persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: user_id
//
// Using the user id as PK guarantees one cart per user and makes every
// cart operation a single-key access.
type Cart struct {
	UserID     string     `json:"user_id"`
	Items      []CartItem `json:"items"`
	CouponCode string     `json:"coupon_code,omitempty"`
	Discount   float64    `json:"discount"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
