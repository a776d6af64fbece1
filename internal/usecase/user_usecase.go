package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase/interfaces"
)

var ErrAlreadyInWishlist = errors.New("product already in wishlist")

// ProfileUpdate carries the optional profile fields; nil means "leave as is".
type ProfileUpdate struct {
	Name    *string
	Phone   *string
	Avatar  *string
	Address *entities.UserAddress
}

// IUserUseCase exposes profile, wishlist and admin account operations.
type IUserUseCase interface {
	GetProfile(ctx context.Context, userID string) (entities.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (entities.User, error)
	GetWishlist(ctx context.Context, userID string) ([]entities.Product, error)
	AddToWishlist(ctx context.Context, userID, productID string) ([]string, error)
	RemoveFromWishlist(ctx context.Context, userID, productID string) ([]string, error)

	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, id string) (entities.User, error)
	UpdateUser(ctx context.Context, id string, role entities.UserRole, active *bool) (entities.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserUseCase struct {
	users    interfaces.IUserRepository
	products interfaces.IProductRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(users interfaces.IUserRepository, products interfaces.IProductRepository) *UserUseCase {
	return &UserUseCase{users: users, products: products}
}

func (u *UserUseCase) GetProfile(ctx context.Context, userID string) (entities.User, error) {
	return u.GetUser(ctx, userID)
}

func (u *UserUseCase) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (entities.User, error) {
	user, err := u.GetUser(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}

	if update.Name != nil && strings.TrimSpace(*update.Name) != "" {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Phone != nil {
		user.Phone = strings.TrimSpace(*update.Phone)
	}
	if update.Avatar != nil {
		user.Avatar = strings.TrimSpace(*update.Avatar)
	}
	if update.Address != nil {
		user.Address = *update.Address
	}

	user.UpdatedAt = time.Now().UTC()
	return u.users.Update(ctx, user)
}

func (u *UserUseCase) GetWishlist(ctx context.Context, userID string) ([]entities.Product, error) {
	user, err := u.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	products := make([]entities.Product, 0, len(user.Wishlist))
	for _, productID := range user.Wishlist {
		p, err := u.products.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if p.ID != "" {
			products = append(products, p)
		}
	}
	return products, nil
}

func (u *UserUseCase) AddToWishlist(ctx context.Context, userID, productID string) ([]string, error) {
	user, err := u.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.ID == "" {
		return nil, ErrProductNotFound
	}

	for _, id := range user.Wishlist {
		if id == productID {
			return nil, ErrAlreadyInWishlist
		}
	}

	user.Wishlist = append(user.Wishlist, productID)
	user.UpdatedAt = time.Now().UTC()
	updated, err := u.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	return updated.Wishlist, nil
}

func (u *UserUseCase) RemoveFromWishlist(ctx context.Context, userID, productID string) ([]string, error) {
	user, err := u.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := user.Wishlist[:0]
	for _, id := range user.Wishlist {
		if id != productID {
			kept = append(kept, id)
		}
	}
	user.Wishlist = kept
	user.UpdatedAt = time.Now().UTC()
	updated, err := u.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	return updated.Wishlist, nil
}

func (u *UserUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	return u.users.ListAll(ctx)
}

func (u *UserUseCase) GetUser(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) UpdateUser(ctx context.Context, id string, role entities.UserRole, active *bool) (entities.User, error) {
	user, err := u.GetUser(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	if role == entities.RoleCustomer || role == entities.RoleAdmin {
		user.Role = role
	}
	if active != nil {
		user.Active = *active
	}
	user.UpdatedAt = time.Now().UTC()
	return u.users.Update(ctx, user)
}

func (u *UserUseCase) DeleteUser(ctx context.Context, id string) error {
	if _, err := u.GetUser(ctx, id); err != nil {
		return err
	}
	return u.users.Delete(ctx, id)
}
