package auth

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionType is the billing tier of an account.
type SubscriptionType string

const (
	SubscriptionFree    SubscriptionType = "free"
	SubscriptionPremium SubscriptionType = "premium"
)

func (s SubscriptionType) Valid() bool {
	return s == SubscriptionFree || s == SubscriptionPremium
}

// User is a domain entity representing a system user.
type User struct {
	ID                uuid.UUID        `json:"id"`
	Username          string           `json:"username"`
	Email             string           `json:"email"`
	PasswordHash      string           `json:"-"`
	RegisteredAt      time.Time        `json:"registered_at"`
	IsActive          bool             `json:"is_active"`
	IsSuperuser       bool             `json:"is_superuser"`
	IsVerified        bool             `json:"is_verified"`
	Telegram          *string          `json:"telegram,omitempty"`
	Whatsapp          *string          `json:"whatsapp,omitempty"`
	Linkedin          *string          `json:"linkedin,omitempty"`
	PhoneNumber       *string          `json:"phone_number,omitempty"`
	Subscription      SubscriptionType `json:"subscription_type"`
	ProfilePictureURL *string          `json:"profile_picture_url,omitempty"`
}

// OAuthAccount links a user to an external identity provider account.
type OAuthAccount struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Provider     string
	AccountID    string
	AccountEmail string
	AccessToken  string
	RefreshToken *string
	ExpiresAt    *int64
}
