package response

import (
	"time"

	"shopsphere/internal/domain/entities"
)

type VariantResponse struct {
	Size    string `json:"size,omitempty"`
	Color   string `json:"color,omitempty"`
	Storage string `json:"storage,omitempty"`
}

func fromVariant(v entities.ItemVariant) VariantResponse {
	return VariantResponse{Size: v.Size, Color: v.Color, Storage: v.Storage}
}

type CartItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Variant   VariantResponse `json:"variant"`
}

type CartResponse struct {
	Success    bool               `json:"success"`
	UserID     string             `json:"userId"`
	Items      []CartItemResponse `json:"items"`
	CouponCode string             `json:"couponCode,omitempty"`
	Discount   float64            `json:"discount"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

func FromCart(c entities.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Variant:   fromVariant(item.Variant),
		})
	}
	return CartResponse{
		Success:    true,
		UserID:     c.UserID,
		Items:      items,
		CouponCode: c.CouponCode,
		Discount:   c.Discount,
		UpdatedAt:  c.UpdatedAt,
	}
}
