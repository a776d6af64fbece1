package entities

import "time"

// ProductCategory enumerates the catalog categories the storefront sells.
type ProductCategory string

const (
	CategoryMobilePhones ProductCategory = "Mobile Phones"
	CategoryHeadphones   ProductCategory = "Headphones"
	CategoryClothes      ProductCategory = "Clothes"
	CategoryShoes        ProductCategory = "Shoes"
	CategoryLaptops      ProductCategory = "Laptops"
	CategorySmartWatches ProductCategory = "Smart Watches"
	CategoryAccessories  ProductCategory = "Accessories"
)

// ValidCategory reports whether c is one of the known catalog categories.
func ValidCategory(c ProductCategory) bool {
	switch c {
	case CategoryMobilePhones, CategoryHeadphones, CategoryClothes,
		CategoryShoes, CategoryLaptops, CategorySmartWatches, CategoryAccessories:
		return true
	}
	return false
}

// ProductVariants holds the selectable options for a product.
type ProductVariants struct {
	Sizes   []string `json:"sizes,omitempty"`
	Colors  []string `json:"colors,omitempty"`
	Storage []string `json:"storage,omitempty"`
}

// ProductRating is the denormalized review rollup kept on the product.
type ProductRating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Product is a catalog item persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Listing filters (category, search, price, rating) are applied by the
// repository; Stock is the live on-hand quantity the forecast reads.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Category       ProductCategory `json:"category"`
	Price          float64         `json:"price"`
	CompareAtPrice float64         `json:"compare_at_price,omitempty"`
	Images         []string        `json:"images"`
	Stock          int             `json:"stock"`
	Variants       ProductVariants `json:"variants"`
	Brand          string          `json:"brand,omitempty"`
	SKU            string          `json:"sku,omitempty"`
	Rating         ProductRating   `json:"rating"`
	Featured       bool            `json:"featured"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
