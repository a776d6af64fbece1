package response

import (
	"time"

	"shopsphere/internal/domain/entities"
)

type OrderItemResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
	Price     float64         `json:"price"`
	Quantity  int             `json:"quantity"`
	Variant   VariantResponse `json:"variant"`
}

type ShippingAddressResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type PaymentResultResponse struct {
	ID           string `json:"id,omitempty"`
	Status       string `json:"status,omitempty"`
	UpdateTime   string `json:"updateTime,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

type OrderResponse struct {
	ID              string                  `json:"id"`
	UserID          string                  `json:"userId"`
	Items           []OrderItemResponse     `json:"items"`
	ShippingAddress ShippingAddressResponse `json:"shippingAddress"`
	PaymentMethod   string                  `json:"paymentMethod"`
	PaymentResult   PaymentResultResponse   `json:"paymentResult"`
	ItemsPrice      float64                 `json:"itemsPrice"`
	ShippingPrice   float64                 `json:"shippingPrice"`
	TaxPrice        float64                 `json:"taxPrice"`
	DiscountPrice   float64                 `json:"discountPrice"`
	CouponCode      string                  `json:"couponCode,omitempty"`
	TotalPrice      float64                 `json:"totalPrice"`
	Status          string                  `json:"status"`
	PaidAt          *time.Time              `json:"paidAt,omitempty"`
	DeliveredAt     *time.Time              `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Variant:   fromVariant(item.Variant),
		})
	}
	return OrderResponse{
		ID:     o.ID,
		UserID: o.UserID,
		Items:  items,
		ShippingAddress: ShippingAddressResponse{
			Name:    o.ShippingAddress.Name,
			Phone:   o.ShippingAddress.Phone,
			Street:  o.ShippingAddress.Street,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			ZipCode: o.ShippingAddress.ZipCode,
			Country: o.ShippingAddress.Country,
		},
		PaymentMethod: string(o.PaymentMethod),
		PaymentResult: PaymentResultResponse{
			ID:           o.PaymentResult.ID,
			Status:       o.PaymentResult.Status,
			UpdateTime:   o.PaymentResult.UpdateTime,
			EmailAddress: o.PaymentResult.EmailAddress,
		},
		ItemsPrice:    o.ItemsPrice,
		ShippingPrice: o.ShippingPrice,
		TaxPrice:      o.TaxPrice,
		DiscountPrice: o.DiscountPrice,
		CouponCode:    o.CouponCode,
		TotalPrice:    o.TotalPrice,
		Status:        string(o.Status),
		PaidAt:        o.PaidAt,
		DeliveredAt:   o.DeliveredAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

type SingleOrderResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}

func FromSingleOrder(o entities.Order) SingleOrderResponse {
	return SingleOrderResponse{Success: true, Order: FromOrder(o)}
}

type OrderListResponse struct {
	Success bool            `json:"success"`
	Orders  []OrderResponse `json:"orders"`
}

func FromOrders(orders []entities.Order) OrderListResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return OrderListResponse{Success: true, Orders: out}
}
