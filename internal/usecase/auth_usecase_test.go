package usecase

import (
	"context"
	"errors"
	"testing"

	"shopsphere/internal/domain/entities"
	mock_interfaces "shopsphere/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const authTestSecret = "test-secret"

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewAuthUseCase(nil, authTestSecret)
		_, _, err := uc.Register(context.Background(), "Ana", "", "pass")
		if !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, authTestSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: "u1"}, nil)

		_, _, err := uc.Register(context.Background(), "Ana", "Ana@Example.com", "pass")
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("register issues a usable token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, authTestSecret)

		var created entities.User
		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.Role != entities.RoleCustomer || !u.Active {
					t.Fatalf("unexpected user: %+v", u)
				}
				if u.PasswordHash == "pass" {
					t.Fatalf("password stored in clear")
				}
				created = u
				return u, nil
			},
		)

		user, token, err := uc.Register(context.Background(), "Ana", "ana@example.com", "pass")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" || user.Email != "ana@example.com" {
			t.Fatalf("unexpected result: %+v token=%q", user, token)
		}

		users.EXPECT().GetByID(gomock.Any(), created.ID).Return(created, nil)
		resolved, err := uc.UserFromToken(context.Background(), token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved.ID != created.ID {
			t.Fatalf("expected user %s, got %s", created.ID, resolved.ID)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	stored := entities.User{ID: "u1", Email: "ana@example.com", PasswordHash: string(hash), Active: true}

	t.Run("missing credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil, authTestSecret)
		_, _, err := uc.Login(context.Background(), "ana@example.com", "")
		if !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, authTestSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)

		_, _, err := uc.Login(context.Background(), "ana@example.com", "secret")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, authTestSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(stored, nil)

		_, _, err := uc.Login(context.Background(), "ana@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("deactivated account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, authTestSecret)

		inactive := stored
		inactive.Active = false
		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(inactive, nil)

		_, _, err := uc.Login(context.Background(), "ana@example.com", "secret")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("login success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, authTestSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(stored, nil)

		user, token, err := uc.Login(context.Background(), " Ana@Example.com ", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "u1" || token == "" {
			t.Fatalf("unexpected result: %+v token=%q", user, token)
		}
	})
}

func TestAuthUseCase_UserFromToken(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, authTestSecret)
		_, err := uc.UserFromToken(context.Background(), "not.a.token")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewAuthUseCase(nil, "other-secret")
		token, err := other.issueToken(entities.User{ID: "u1"})
		if err != nil {
			t.Fatalf("issueToken: %v", err)
		}

		uc := NewAuthUseCase(nil, authTestSecret)
		if _, err := uc.UserFromToken(context.Background(), token); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("deactivated user behind valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, authTestSecret)

		token, err := uc.issueToken(entities.User{ID: "u1"})
		if err != nil {
			t.Fatalf("issueToken: %v", err)
		}
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Active: false}, nil)

		if _, err := uc.UserFromToken(context.Background(), token); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
