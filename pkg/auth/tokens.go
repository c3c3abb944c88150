package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenGenerator abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}

// PasswordHasher abstracts the password hashing primitive. The crypto
// stays inside a vetted library behind this interface.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// Token purposes for one-time tokens.
const (
	PurposeVerify = "verify"
	PurposeReset  = "reset"
)

// TokenStore keeps short-lived one-time tokens (email verification,
// password reset) and the logout blacklist of JWT ids.
type TokenStore interface {
	SaveOneTime(ctx context.Context, purpose, token string, userID uuid.UUID, ttl time.Duration) error
	// ConsumeOneTime resolves and invalidates a one-time token.
	ConsumeOneTime(ctx context.Context, purpose, token string) (uuid.UUID, error)
	BlacklistJTI(ctx context.Context, jti string, expiresAt time.Time) error
	JTIBlacklisted(ctx context.Context, jti string) (bool, error)
}

// Mailer sends transactional mail triggered by auth events.
type Mailer interface {
	SendWelcome(ctx context.Context, user User) error
	SendLoginNotice(ctx context.Context, user User) error
	SendVerification(ctx context.Context, user User, token string) error
	SendPasswordReset(ctx context.Context, user User, token string) error
	SendPasswordChanged(ctx context.Context, user User) error
}
