package interfaces

import (
	"context"

	"shopsphere/internal/domain/entities"
)

// IReviewRepository abstracts DynamoDB persistence for Review.
type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	ListByProductID(ctx context.Context, productID string) ([]entities.Review, error)
	GetByProductAndUser(ctx context.Context, productID, userID string) (entities.Review, error)
}
