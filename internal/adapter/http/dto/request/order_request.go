package request

import (
	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase"
)

type OrderItemRequest struct {
	ProductID string         `json:"productId" binding:"required"`
	Quantity  int            `json:"quantity" binding:"required"`
	Variant   VariantRequest `json:"variant"`
}

type ShippingAddressRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zipCode" binding:"required"`
	Country string `json:"country" binding:"required"`
}

// CreateOrderRequest is the checkout payload. It carries no monetary
// amounts; totals are recomputed server-side from the catalog.
type CreateOrderRequest struct {
	Items           []OrderItemRequest     `json:"items" binding:"required"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress" binding:"required"`
	PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
	CouponCode      string                 `json:"couponCode"`
	Discount        float64                `json:"discount"`
}

func (r CreateOrderRequest) ToInput() usecase.NewOrderInput {
	items := make([]usecase.NewOrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, usecase.NewOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Variant:   item.Variant.ToVariant(),
		})
	}
	return usecase.NewOrderInput{
		Items: items,
		ShippingAddress: entities.ShippingAddress{
			Name:    r.ShippingAddress.Name,
			Phone:   r.ShippingAddress.Phone,
			Street:  r.ShippingAddress.Street,
			City:    r.ShippingAddress.City,
			State:   r.ShippingAddress.State,
			ZipCode: r.ShippingAddress.ZipCode,
			Country: r.ShippingAddress.Country,
		},
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		CouponCode:    r.CouponCode,
		Discount:      r.Discount,
	}
}

// PayOrderRequest records a provider outcome against an order.
type PayOrderRequest struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"updateTime"`
	EmailAddress string `json:"emailAddress"`
}

func (r PayOrderRequest) ToPaymentResult() entities.PaymentResult {
	return entities.PaymentResult{
		ID:           r.ID,
		Status:       r.Status,
		UpdateTime:   r.UpdateTime,
		EmailAddress: r.EmailAddress,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
