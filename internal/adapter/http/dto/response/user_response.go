package response

import (
	"time"

	"shopsphere/internal/domain/entities"
)

type AddressResponse struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// UserResponse is the account wire format. The password hash never leaves
// the domain layer.
type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Phone     string          `json:"phone,omitempty"`
	Avatar    string          `json:"avatar,omitempty"`
	Address   AddressResponse `json:"address"`
	Wishlist  []string        `json:"wishlist"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   string(u.Role),
		Phone:  u.Phone,
		Avatar: u.Avatar,
		Address: AddressResponse{
			Street:  u.Address.Street,
			City:    u.Address.City,
			State:   u.Address.State,
			ZipCode: u.Address.ZipCode,
			Country: u.Address.Country,
		},
		Wishlist:  u.Wishlist,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

func FromAuth(u entities.User, token string) AuthResponse {
	return AuthResponse{Success: true, Token: token, User: FromUser(u)}
}

type SingleUserResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

func FromSingleUser(u entities.User) SingleUserResponse {
	return SingleUserResponse{Success: true, User: FromUser(u)}
}

type UserListResponse struct {
	Success bool           `json:"success"`
	Users   []UserResponse `json:"users"`
}

func FromUsers(users []entities.User) UserListResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return UserListResponse{Success: true, Users: out}
}

type WishlistResponse struct {
	Success  bool     `json:"success"`
	Wishlist []string `json:"wishlist"`
}

func FromWishlist(wishlist []string) WishlistResponse {
	if wishlist == nil {
		wishlist = []string{}
	}
	return WishlistResponse{Success: true, Wishlist: wishlist}
}
