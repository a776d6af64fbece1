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
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidCartItem  = errors.New("invalid cart item")
)

// ICartUseCase exposes per-user cart operations.
type ICartUseCase interface {
	GetCart(ctx context.Context, userID string) (entities.Cart, error)
	AddItem(ctx context.Context, userID, productID string, quantity int, variant entities.ItemVariant) (entities.Cart, error)
	UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID string) (entities.Cart, error)
	ClearCart(ctx context.Context, userID string) (entities.Cart, error)
}

type CartUseCase struct {
	carts    interfaces.ICartRepository
	products interfaces.IProductRepository
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(carts interfaces.ICartRepository, products interfaces.IProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// GetCart returns the user's cart, creating an empty one on first read.
func (u *CartUseCase) GetCart(ctx context.Context, userID string) (entities.Cart, error) {
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	if cart.UserID == "" {
		now := time.Now().UTC()
		return u.carts.Save(ctx, entities.Cart{UserID: userID, Items: []entities.CartItem{}, CreatedAt: now, UpdatedAt: now})
	}
	return cart, nil
}

func (u *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int, variant entities.ItemVariant) (entities.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Cart{}, ErrInvalidCartItem
	}
	if quantity < 1 {
		quantity = 1
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return entities.Cart{}, err
	}
	if product.ID == "" || !product.Active {
		return entities.Cart{}, ErrProductNotFound
	}

	cart, err := u.GetCart(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	// Same product in the same variant merges into one line.
	merged := false
	for i, item := range cart.Items {
		if item.ProductID == productID && item.Variant == variant {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, entities.CartItem{
			ID:        uuid.NewString(),
			ProductID: productID,
			Quantity:  quantity,
			Variant:   variant,
		})
	}

	cart.UpdatedAt = time.Now().UTC()
	return u.carts.Save(ctx, cart)
}

func (u *CartUseCase) UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) (entities.Cart, error) {
	if quantity < 1 {
		return entities.Cart{}, ErrInvalidCartItem
	}

	cart, err := u.GetCart(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	found := false
	for i, item := range cart.Items {
		if item.ID == itemID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return entities.Cart{}, ErrCartItemNotFound
	}

	cart.UpdatedAt = time.Now().UTC()
	return u.carts.Save(ctx, cart)
}

func (u *CartUseCase) RemoveItem(ctx context.Context, userID, itemID string) (entities.Cart, error) {
	cart, err := u.GetCart(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	cart.UpdatedAt = time.Now().UTC()
	return u.carts.Save(ctx, cart)
}

func (u *CartUseCase) ClearCart(ctx context.Context, userID string) (entities.Cart, error) {
	cart, err := u.GetCart(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	cart.Items = []entities.CartItem{}
	cart.CouponCode = ""
	cart.Discount = 0
	cart.UpdatedAt = time.Now().UTC()
	return u.carts.Save(ctx, cart)
}
