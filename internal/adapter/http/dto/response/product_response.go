package response

import (
	"time"

	"shopsphere/internal/domain/entities"
)

type ProductVariantsResponse struct {
	Sizes   []string `json:"sizes,omitempty"`
	Colors  []string `json:"colors,omitempty"`
	Storage []string `json:"storage,omitempty"`
}

type ProductRatingResponse struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type ProductResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	Category       string                  `json:"category"`
	Price          float64                 `json:"price"`
	CompareAtPrice float64                 `json:"compareAtPrice,omitempty"`
	Images         []string                `json:"images"`
	Stock          int                     `json:"stock"`
	Variants       ProductVariantsResponse `json:"variants"`
	Brand          string                  `json:"brand,omitempty"`
	SKU            string                  `json:"sku,omitempty"`
	Rating         ProductRatingResponse   `json:"rating"`
	Featured       bool                    `json:"featured"`
	Active         bool                    `json:"active"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Category:       string(p.Category),
		Price:          p.Price,
		CompareAtPrice: p.CompareAtPrice,
		Images:         p.Images,
		Stock:          p.Stock,
		Variants: ProductVariantsResponse{
			Sizes:   p.Variants.Sizes,
			Colors:  p.Variants.Colors,
			Storage: p.Variants.Storage,
		},
		Brand:     p.Brand,
		SKU:       p.SKU,
		Rating:    ProductRatingResponse{Average: p.Rating.Average, Count: p.Rating.Count},
		Featured:  p.Featured,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

// ProductListResponse is a paginated catalog page.
type ProductListResponse struct {
	Success  bool              `json:"success"`
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
}

func FromProductPage(products []entities.Product, total, page, limit int) ProductListResponse {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return ProductListResponse{
		Success:  true,
		Products: FromProducts(products),
		Total:    total,
		Page:     page,
		Pages:    pages,
	}
}

type ProductsResponse struct {
	Success  bool              `json:"success"`
	Products []ProductResponse `json:"products"`
}

func FromProductList(products []entities.Product) ProductsResponse {
	return ProductsResponse{Success: true, Products: FromProducts(products)}
}

type SingleProductResponse struct {
	Success bool            `json:"success"`
	Product ProductResponse `json:"product"`
}

func FromSingleProduct(p entities.Product) SingleProductResponse {
	return SingleProductResponse{Success: true, Product: FromProduct(p)}
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

type ReviewListResponse struct {
	Success bool             `json:"success"`
	Reviews []ReviewResponse `json:"reviews"`
}

func FromReviews(reviews []entities.Review) ReviewListResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, FromReview(r))
	}
	return ReviewListResponse{Success: true, Reviews: out}
}

type SingleReviewResponse struct {
	Success bool           `json:"success"`
	Review  ReviewResponse `json:"review"`
}

func FromSingleReview(r entities.Review) SingleReviewResponse {
	return SingleReviewResponse{Success: true, Review: FromReview(r)}
}
