package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidReview   = errors.New("invalid review")
	ErrAlreadyReviewed = errors.New("product already reviewed by this user")
	ErrUnknownCategory = errors.New("unknown product category")
)

const (
	defaultPageLimit  = 12
	featuredListLimit = 8
)

// IProductUseCase exposes catalog queries, reviews and admin product CRUD.
type IProductUseCase interface {
	ListProducts(ctx context.Context, f interfaces.ProductFilter) ([]entities.Product, int, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	ListFeatured(ctx context.Context) ([]entities.Product, error)
	ListByCategory(ctx context.Context, category entities.ProductCategory) ([]entities.Product, error)
	ListReviews(ctx context.Context, productID string) ([]entities.Review, error)
	CreateReview(ctx context.Context, productID string, user entities.User, rating int, comment string) (entities.Review, error)

	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	DeactivateProduct(ctx context.Context, id string) error
	ListAllProducts(ctx context.Context) ([]entities.Product, error)
}

type ProductUseCase struct {
	products interfaces.IProductRepository
	reviews  interfaces.IReviewRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(products interfaces.IProductRepository, reviews interfaces.IReviewRepository) *ProductUseCase {
	return &ProductUseCase{products: products, reviews: reviews}
}

func (u *ProductUseCase) ListProducts(ctx context.Context, f interfaces.ProductFilter) ([]entities.Product, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageLimit
	}
	f.ActiveOnly = true
	return u.products.List(ctx, f)
}

func (u *ProductUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrProductNotFound
	}
	p, err := u.products.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) ListFeatured(ctx context.Context) ([]entities.Product, error) {
	return u.products.ListFeatured(ctx, featuredListLimit)
}

func (u *ProductUseCase) ListByCategory(ctx context.Context, category entities.ProductCategory) ([]entities.Product, error) {
	if !entities.ValidCategory(category) {
		return nil, ErrUnknownCategory
	}
	return u.products.ListByCategory(ctx, category)
}

func (u *ProductUseCase) ListReviews(ctx context.Context, productID string) ([]entities.Review, error) {
	if _, err := u.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	return u.reviews.ListByProductID(ctx, productID)
}

func (u *ProductUseCase) CreateReview(ctx context.Context, productID string, user entities.User, rating int, comment string) (entities.Review, error) {
	if rating < 1 || rating > 5 || len(comment) > 1000 {
		return entities.Review{}, ErrInvalidReview
	}

	product, err := u.GetProduct(ctx, productID)
	if err != nil {
		return entities.Review{}, err
	}

	existing, err := u.reviews.GetByProductAndUser(ctx, product.ID, user.ID)
	if err != nil {
		return entities.Review{}, err
	}
	if existing.ID != "" {
		return entities.Review{}, ErrAlreadyReviewed
	}

	review := entities.Review{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.reviews.Create(ctx, review)
	if err != nil {
		return entities.Review{}, err
	}

	// Denormalized rollup kept on the product for cheap listing reads.
	newCount := product.Rating.Count + 1
	newAverage := (product.Rating.Average*float64(product.Rating.Count) + float64(rating)) / float64(newCount)
	if err := u.products.UpdateRating(ctx, product.ID, newAverage, newCount); err != nil {
		return entities.Review{}, err
	}
	return created, nil
}

func (u *ProductUseCase) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || len(p.Name) > 200 || len(p.Description) > 2000 || p.Price < 0 || p.Stock < 0 {
		return entities.Product{}, ErrInvalidProduct
	}
	if !entities.ValidCategory(p.Category) {
		return entities.Product{}, ErrUnknownCategory
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.Active = true
	p.Rating = entities.ProductRating{}
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.products.Create(ctx, p)
}

func (u *ProductUseCase) UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	current, err := u.GetProduct(ctx, p.ID)
	if err != nil {
		return entities.Product{}, err
	}
	if p.Price < 0 || p.Stock < 0 || len(p.Name) > 200 || len(p.Description) > 2000 {
		return entities.Product{}, ErrInvalidProduct
	}
	if p.Category != "" && !entities.ValidCategory(p.Category) {
		return entities.Product{}, ErrUnknownCategory
	}

	// Rating rollup and creation time are owned by the service, not the admin.
	p.Rating = current.Rating
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	return u.products.Update(ctx, p)
}

func (u *ProductUseCase) DeactivateProduct(ctx context.Context, id string) error {
	p, err := u.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	p.Active = false
	p.UpdatedAt = time.Now().UTC()
	_, err = u.products.Update(ctx, p)
	return err
}

func (u *ProductUseCase) ListAllProducts(ctx context.Context) ([]entities.Product, error) {
	products, _, err := u.products.List(ctx, interfaces.ProductFilter{Page: 1, Limit: 1000, Sort: "newest"})
	return products, err
}
