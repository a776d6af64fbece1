package usecase

import (
	"context"
	"errors"
	"testing"

	"shopsphere/internal/domain/entities"
	mock_interfaces "shopsphere/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCartUseCase_GetCart(t *testing.T) {
	t.Run("creates empty cart on first read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)

		carts.EXPECT().Get(gomock.Any(), "u1").Return(entities.Cart{}, nil)
		carts.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Cart{})).DoAndReturn(
			func(_ context.Context, c entities.Cart) (entities.Cart, error) {
				if c.UserID != "u1" || len(c.Items) != 0 {
					t.Fatalf("unexpected cart: %+v", c)
				}
				return c, nil
			},
		)

		cart, err := uc.GetCart(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.UserID != "u1" {
			t.Fatalf("expected cart for u1, got %+v", cart)
		}
	})

	t.Run("returns existing cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)

		carts.EXPECT().Get(gomock.Any(), "u1").Return(entities.Cart{UserID: "u1", Items: []entities.CartItem{{ID: "i1"}}}, nil)

		cart, err := uc.GetCart(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 1 {
			t.Fatalf("expected one item, got %+v", cart)
		}
	})
}

func TestCartUseCase_AddItem(t *testing.T) {
	variant := entities.ItemVariant{Size: "M"}

	t.Run("missing product id", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil)
		_, err := uc.AddItem(context.Background(), "u1", " ", 1, variant)
		if !errors.Is(err, ErrInvalidCartItem) {
			t.Fatalf("expected ErrInvalidCartItem, got %v", err)
		}
	})

	t.Run("inactive product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(nil, products)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Active: false}, nil)

		_, err := uc.AddItem(context.Background(), "u1", "p1", 1, variant)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("merges same product and variant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(carts, products)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Active: true}, nil)
		carts.EXPECT().Get(gomock.Any(), "u1").Return(entities.Cart{
			UserID: "u1",
			Items:  []entities.CartItem{{ID: "i1", ProductID: "p1", Quantity: 1, Variant: variant}},
		}, nil)
		carts.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Cart{})).DoAndReturn(
			func(_ context.Context, c entities.Cart) (entities.Cart, error) {
				if len(c.Items) != 1 || c.Items[0].Quantity != 3 {
					t.Fatalf("expected merged line with quantity 3, got %+v", c.Items)
				}
				return c, nil
			},
		)

		if _, err := uc.AddItem(context.Background(), "u1", "p1", 2, variant); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("different variant appends new line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(carts, products)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Active: true}, nil)
		carts.EXPECT().Get(gomock.Any(), "u1").Return(entities.Cart{
			UserID: "u1",
			Items:  []entities.CartItem{{ID: "i1", ProductID: "p1", Quantity: 1, Variant: variant}},
		}, nil)
		carts.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Cart{})).DoAndReturn(
			func(_ context.Context, c entities.Cart) (entities.Cart, error) {
				if len(c.Items) != 2 {
					t.Fatalf("expected two lines, got %+v", c.Items)
				}
				return c, nil
			},
		)

		if _, err := uc.AddItem(context.Background(), "u1", "p1", 1, entities.ItemVariant{Size: "L"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCartUseCase_UpdateItemQuantity(t *testing.T) {
	t.Run("quantity below one", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil)
		_, err := uc.UpdateItemQuantity(context.Background(), "u1", "i1", 0)
		if !errors.Is(err, ErrInvalidCartItem) {
			t.Fatalf("expected ErrInvalidCartItem, got %v", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)

		carts.EXPECT().Get(gomock.Any(), "u1").Return(entities.Cart{UserID: "u1"}, nil)

		_, err := uc.UpdateItemQuantity(context.Background(), "u1", "missing", 2)
		if !errors.Is(err, ErrCartItemNotFound) {
			t.Fatalf("expected ErrCartItemNotFound, got %v", err)
		}
	})
}

func TestCartUseCase_ClearCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	carts := mock_interfaces.NewMockICartRepository(ctrl)
	uc := NewCartUseCase(carts, nil)

	carts.EXPECT().Get(gomock.Any(), "u1").Return(entities.Cart{
		UserID:     "u1",
		Items:      []entities.CartItem{{ID: "i1"}},
		CouponCode: "SAVE10",
		Discount:   10,
	}, nil)
	carts.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Cart{})).DoAndReturn(
		func(_ context.Context, c entities.Cart) (entities.Cart, error) {
			if len(c.Items) != 0 || c.CouponCode != "" || c.Discount != 0 {
				t.Fatalf("expected emptied cart, got %+v", c)
			}
			return c, nil
		},
	)

	if _, err := uc.ClearCart(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
