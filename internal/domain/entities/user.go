package entities

import "time"

// UserRole gates access to the admin back office.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// UserAddress is the default address stored on the profile.
type UserAddress struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

// User is a storefront account persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email, used for login and duplicate checks.
//
// PasswordHash is a bcrypt hash and must never reach a response DTO.
type User struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         UserRole    `json:"role"`
	Phone        string      `json:"phone,omitempty"`
	Avatar       string      `json:"avatar,omitempty"`
	Address      UserAddress `json:"address"`
	Wishlist     []string    `json:"wishlist"`
	Active       bool        `json:"active"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
