package usecase

import (
	"context"
	"errors"
	"testing"

	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase/interfaces"
	mock_interfaces "shopsphere/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_ListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewProductUseCase(products, nil)

	products.EXPECT().List(gomock.Any(), gomock.AssignableToTypeOf(interfaces.ProductFilter{})).DoAndReturn(
		func(_ context.Context, f interfaces.ProductFilter) ([]entities.Product, int, error) {
			if f.Page != 1 || f.Limit != defaultPageLimit || !f.ActiveOnly {
				t.Fatalf("unexpected filter defaults: %+v", f)
			}
			return []entities.Product{{ID: "p1"}}, 1, nil
		},
	)

	got, total, err := uc.ListProducts(context.Background(), interfaces.ProductFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || total != 1 {
		t.Fatalf("unexpected result: %v %d", got, total)
	}
}

func TestProductUseCase_GetProduct(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.GetProduct(context.Background(), "  ")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(products, nil)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{}, nil)

		_, err := uc.GetProduct(context.Background(), "p1")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestProductUseCase_ListByCategory(t *testing.T) {
	uc := NewProductUseCase(nil, nil)
	_, err := uc.ListByCategory(context.Background(), "Groceries")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestProductUseCase_CreateReview(t *testing.T) {
	user := entities.User{ID: "u1", Name: "Ana"}

	t.Run("invalid rating", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.CreateReview(context.Background(), "p1", user, 0, "ok")
		if !errors.Is(err, ErrInvalidReview) {
			t.Fatalf("expected ErrInvalidReview, got %v", err)
		}
	})

	t.Run("duplicate review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewProductUseCase(products, reviews)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1"}, nil)
		reviews.EXPECT().GetByProductAndUser(gomock.Any(), "p1", "u1").Return(entities.Review{ID: "r1"}, nil)

		_, err := uc.CreateReview(context.Background(), "p1", user, 4, "again")
		if !errors.Is(err, ErrAlreadyReviewed) {
			t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
		}
	})

	t.Run("create recomputes rating rollup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewProductUseCase(products, reviews)

		product := entities.Product{ID: "p1", Rating: entities.ProductRating{Average: 4.0, Count: 1}}
		products.EXPECT().GetByID(gomock.Any(), "p1").Return(product, nil)
		reviews.EXPECT().GetByProductAndUser(gomock.Any(), "p1", "u1").Return(entities.Review{}, nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Review{})).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) {
				if r.ID == "" || r.ProductID != "p1" || r.UserID != "u1" || r.Rating != 2 {
					t.Fatalf("unexpected review: %+v", r)
				}
				return r, nil
			},
		)
		products.EXPECT().UpdateRating(gomock.Any(), "p1", 3.0, 2).Return(nil)

		if _, err := uc.CreateReview(context.Background(), "p1", user, 2, "meh"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProductUseCase_CreateProduct(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.CreateProduct(context.Background(), entities.Product{Name: "", Category: entities.CategoryShoes})
		if !errors.Is(err, ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc := NewProductUseCase(nil, nil)
		_, err := uc.CreateProduct(context.Background(), entities.Product{Name: "Thing", Category: "Furniture"})
		if !errors.Is(err, ErrUnknownCategory) {
			t.Fatalf("expected ErrUnknownCategory, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(products, nil)

		products.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || !p.Active || p.Rating.Count != 0 {
					t.Fatalf("unexpected product: %+v", p)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		created, err := uc.CreateProduct(context.Background(), entities.Product{Name: "Runner", Category: entities.CategoryShoes, Price: 59.9, Stock: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestProductUseCase_DeactivateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewProductUseCase(products, nil)

	products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Active: true}, nil)
	products.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
		func(_ context.Context, p entities.Product) (entities.Product, error) {
			if p.Active {
				t.Fatalf("expected product deactivated")
			}
			return p, nil
		},
	)

	if err := uc.DeactivateProduct(context.Background(), "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
