package usecase

import (
	"context"
	"errors"
	"testing"

	"shopsphere/internal/domain/entities"
	mock_interfaces "shopsphere/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewUserUseCase(users, nil)

	stored := entities.User{ID: "u1", Name: "Ana", Phone: "111", Avatar: "old.png"}
	newName := "  Ana Maria  "
	newPhone := "222"

	users.EXPECT().GetByID(gomock.Any(), "u1").Return(stored, nil)
	users.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
		func(_ context.Context, u entities.User) (entities.User, error) {
			if u.Name != "Ana Maria" || u.Phone != "222" {
				t.Fatalf("unexpected update: %+v", u)
			}
			if u.Avatar != "old.png" {
				t.Fatalf("expected untouched avatar, got %q", u.Avatar)
			}
			return u, nil
		},
	)

	updated, err := uc.UpdateProfile(context.Background(), "u1", ProfileUpdate{Name: &newName, Phone: &newPhone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Ana Maria" {
		t.Fatalf("expected trimmed name, got %q", updated.Name)
	}
}

func TestUserUseCase_Wishlist(t *testing.T) {
	t.Run("add unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewUserUseCase(users, products)

		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1"}, nil)
		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{}, nil)

		_, err := uc.AddToWishlist(context.Background(), "u1", "p1")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("add duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewUserUseCase(users, products)

		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Wishlist: []string{"p1"}}, nil)
		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1"}, nil)

		_, err := uc.AddToWishlist(context.Background(), "u1", "p1")
		if !errors.Is(err, ErrAlreadyInWishlist) {
			t.Fatalf("expected ErrAlreadyInWishlist, got %v", err)
		}
	})

	t.Run("add and remove", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewUserUseCase(users, products)

		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Wishlist: []string{"p1"}}, nil)
		products.EXPECT().GetByID(gomock.Any(), "p2").Return(entities.Product{ID: "p2"}, nil)
		users.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) { return u, nil },
		)

		wishlist, err := uc.AddToWishlist(context.Background(), "u1", "p2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(wishlist) != 2 || wishlist[1] != "p2" {
			t.Fatalf("unexpected wishlist: %v", wishlist)
		}

		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Wishlist: []string{"p1", "p2"}}, nil)
		users.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) { return u, nil },
		)

		wishlist, err = uc.RemoveFromWishlist(context.Background(), "u1", "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(wishlist) != 1 || wishlist[0] != "p2" {
			t.Fatalf("unexpected wishlist: %v", wishlist)
		}
	})

	t.Run("wishlist skips vanished products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewUserUseCase(users, products)

		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Wishlist: []string{"p1", "gone"}}, nil)
		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1"}, nil)
		products.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Product{}, nil)

		got, err := uc.GetWishlist(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p1" {
			t.Fatalf("unexpected wishlist products: %v", got)
		}
	})
}

func TestUserUseCase_Admin(t *testing.T) {
	t.Run("get unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(users, nil)

		users.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.User{}, nil)

		_, err := uc.GetUser(context.Background(), "missing")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("update role and active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(users, nil)

		inactive := false
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Role: entities.RoleCustomer, Active: true}, nil)
		users.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Role != entities.RoleAdmin || u.Active {
					t.Fatalf("unexpected update: %+v", u)
				}
				return u, nil
			},
		)

		if _, err := uc.UpdateUser(context.Background(), "u1", entities.RoleAdmin, &inactive); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown role is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(users, nil)

		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Role: entities.RoleCustomer, Active: true}, nil)
		users.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Role != entities.RoleCustomer {
					t.Fatalf("expected role untouched, got %s", u.Role)
				}
				return u, nil
			},
		)

		if _, err := uc.UpdateUser(context.Background(), "u1", "superuser", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(users, nil)

		users.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.User{}, nil)

		if err := uc.DeleteUser(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("delete existing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(users, nil)

		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1"}, nil)
		users.EXPECT().Delete(gomock.Any(), "u1").Return(nil)

		if err := uc.DeleteUser(context.Background(), "u1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
