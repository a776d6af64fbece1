package interfaces

import (
	"context"

	"shopsphere/internal/domain/entities"
)

// ICartRepository abstracts DynamoDB persistence for Cart.
//
// Get returns a zero-value cart (empty UserID) when none exists; Save
// upserts the full cart document.
type ICartRepository interface {
	Get(ctx context.Context, userID string) (entities.Cart, error)
	Save(ctx context.Context, c entities.Cart) (entities.Cart, error)
}
