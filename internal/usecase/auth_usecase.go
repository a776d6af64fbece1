package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("missing required fields")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

const tokenTTL = 30 * 24 * time.Hour

// IAuthUseCase exposes account registration, login and token verification.
type IAuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (entities.User, string, error)
	Login(ctx context.Context, email, password string) (entities.User, string, error)
	UserFromToken(ctx context.Context, token string) (entities.User, error)
}

type AuthUseCase struct {
	users     interfaces.IUserRepository
	jwtSecret []byte
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, jwtSecret string) *AuthUseCase {
	return &AuthUseCase{users: users, jwtSecret: []byte(jwtSecret)}
}

func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (entities.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return entities.User{}, "", ErrMissingCredentials
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", err
	}
	if existing.ID != "" {
		return entities.User{}, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, "", err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entities.RoleCustomer,
		Wishlist:     []string{},
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.users.Create(ctx, user)
	if err != nil {
		return entities.User{}, "", err
	}

	token, err := u.issueToken(created)
	if err != nil {
		return entities.User{}, "", err
	}
	return created, token, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.User{}, "", ErrMissingCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", err
	}
	if user.ID == "" || !user.Active {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return entities.User{}, "", ErrInvalidCredentials
	}

	token, err := u.issueToken(user)
	if err != nil {
		return entities.User{}, "", err
	}
	return user, token, nil
}

// UserFromToken validates a bearer token and resolves the current user.
func (u *AuthUseCase) UserFromToken(ctx context.Context, tokenString string) (entities.User, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return u.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return entities.User{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByID(ctx, claims.Subject)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" || !user.Active {
		return entities.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (u *AuthUseCase) issueToken(user entities.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
}
