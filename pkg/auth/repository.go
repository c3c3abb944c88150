package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidInput       = errors.New("invalid input")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Update(ctx context.Context, user User) error
	LinkOAuthAccount(ctx context.Context, acc OAuthAccount) error
	GetByOAuthAccount(ctx context.Context, provider, accountID string) (User, error)
	// admin
	ListAll(ctx context.Context, limit, offset int) ([]User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
