package request

import "shopsphere/internal/domain/entities"

type VariantRequest struct {
	Size    string `json:"size"`
	Color   string `json:"color"`
	Storage string `json:"storage"`
}

func (r VariantRequest) ToVariant() entities.ItemVariant {
	return entities.ItemVariant{Size: r.Size, Color: r.Color, Storage: r.Storage}
}

type AddCartItemRequest struct {
	ProductID string         `json:"productId" binding:"required"`
	Quantity  int            `json:"quantity"`
	Variant   VariantRequest `json:"variant"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
