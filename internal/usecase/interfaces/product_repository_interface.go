package interfaces

import (
	"context"

	"shopsphere/internal/domain/entities"
)

// ProductFilter narrows a catalog listing. Zero values mean "no constraint".
type ProductFilter struct {
	Category   entities.ProductCategory
	Search     string
	MinPrice   float64
	MaxPrice   float64
	MinRating  float64
	Sort       string // price-asc | price-desc | rating | newest
	Page       int
	Limit      int
	ActiveOnly bool
}

// IProductRepository abstracts DynamoDB persistence for Product.
type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context, f ProductFilter) (products []entities.Product, total int, err error)
	ListFeatured(ctx context.Context, limit int) ([]entities.Product, error)
	ListByCategory(ctx context.Context, category entities.ProductCategory) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateStock(ctx context.Context, id string, delta int) (entities.Product, error)
	UpdateRating(ctx context.Context, id string, average float64, count int) error
	Count(ctx context.Context) (int, error)
	CountLowStock(ctx context.Context, threshold int) (int, error)
}
