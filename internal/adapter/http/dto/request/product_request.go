package request

import "shopsphere/internal/domain/entities"

type ProductVariantsRequest struct {
	Sizes   []string `json:"sizes"`
	Colors  []string `json:"colors"`
	Storage []string `json:"storage"`
}

// ProductRequest is the admin create/update payload. Rating and timestamps
// are service-owned and intentionally absent.
type ProductRequest struct {
	Name           string                 `json:"name" binding:"required"`
	Description    string                 `json:"description"`
	Category       string                 `json:"category" binding:"required"`
	Price          float64                `json:"price"`
	CompareAtPrice float64                `json:"compareAtPrice"`
	Images         []string               `json:"images"`
	Stock          int                    `json:"stock"`
	Variants       ProductVariantsRequest `json:"variants"`
	Brand          string                 `json:"brand"`
	SKU            string                 `json:"sku"`
	Featured       bool                   `json:"featured"`
}

func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		Name:           r.Name,
		Description:    r.Description,
		Category:       entities.ProductCategory(r.Category),
		Price:          r.Price,
		CompareAtPrice: r.CompareAtPrice,
		Images:         r.Images,
		Stock:          r.Stock,
		Variants: entities.ProductVariants{
			Sizes:   r.Variants.Sizes,
			Colors:  r.Variants.Colors,
			Storage: r.Variants.Storage,
		},
		Brand:    r.Brand,
		SKU:      r.SKU,
		Featured: r.Featured,
	}
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
