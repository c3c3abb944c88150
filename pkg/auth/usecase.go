package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	Register(ctx context.Context, email, username, password string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error

	RequestVerifyToken(ctx context.Context, email string) error
	VerifyEmail(ctx context.Context, token string) (User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error

	// LoginWithOAuth logs in (or registers) a user coming from an
	// external provider; accounts are associated by email.
	LoginWithOAuth(ctx context.Context, info OAuthUserInfo) (AuthResult, error)

	Profile(ctx context.Context, userID uuid.UUID) (User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, p ProfilePatch) (User, error)

	// admin
	ListUsers(ctx context.Context, limit, offset int) ([]User, error)
	SetUserActive(ctx context.Context, id uuid.UUID, active bool) error
}

type AuthResult struct {
	User  User
	Token string
}

// OAuthUserInfo is the provider-agnostic identity returned by an OAuth
// callback exchange.
type OAuthUserInfo struct {
	Provider     string
	AccountID    string
	Email        string
	Name         string
	PictureURL   string
	AccessToken  string
	RefreshToken *string
	ExpiresAt    *int64
}

// ProfilePatch carries only the profile fields to change.
type ProfilePatch struct {
	Username          *string           `json:"username,omitempty"`
	Telegram          *string           `json:"telegram,omitempty"`
	Whatsapp          *string           `json:"whatsapp,omitempty"`
	Linkedin          *string           `json:"linkedin,omitempty"`
	PhoneNumber       *string           `json:"phone_number,omitempty"`
	ProfilePictureURL *string           `json:"profile_picture_url,omitempty"`
	Subscription      *SubscriptionType `json:"subscription_type,omitempty"`
}

type authService struct {
	repo      UserRepository
	tokens    TokenGenerator
	hasher    PasswordHasher
	store     TokenStore
	mailer    Mailer
	log       *logrus.Logger
	verifyTTL time.Duration
	resetTTL  time.Duration
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator, hasher PasswordHasher, store TokenStore, mailer Mailer, log *logrus.Logger, verifyTTL, resetTTL time.Duration) AuthUseCase {
	return &authService{
		repo:      repo,
		tokens:    tokens,
		hasher:    hasher,
		store:     store,
		mailer:    mailer,
		log:       log,
		verifyTTL: verifyTTL,
		resetTTL:  resetTTL,
	}
}

func newOneTimeToken() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// sendMail logs delivery failures instead of failing the request: mail
// is a side effect, not part of the committed state.
func (s *authService) sendMail(what string, err error) {
	if err != nil {
		s.log.WithError(err).WithField("mail", what).Warn("mail delivery failed")
	}
}

func (s *authService) Register(ctx context.Context, email, username, password string) (AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	username = strings.TrimSpace(username)
	if email == "" || username == "" || password == "" {
		return AuthResult{}, ErrInvalidInput
	}

	// If user exists, fail fast (best-effort check)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrUserAlreadyExists
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return AuthResult{}, err
	}

	user := User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		RegisteredAt: time.Now().UTC(),
		IsActive:     true,
		Subscription: SubscriptionFree,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}

	s.sendMail("welcome", s.mailer.SendWelcome(ctx, user))
	verifyToken := newOneTimeToken()
	if err := s.store.SaveOneTime(ctx, PurposeVerify, verifyToken, user.ID, s.verifyTTL); err != nil {
		s.log.WithError(err).Warn("save verification token")
	} else {
		s.sendMail("verification", s.mailer.SendVerification(ctx, user, verifyToken))
	}

	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !s.hasher.Verify(user.PasswordHash, password) {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return AuthResult{}, ErrUserInactive
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	s.sendMail("login notice", s.mailer.SendLoginNotice(ctx, user))
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return nil
	}
	return s.store.BlacklistJTI(ctx, jti, expiresAt)
}

func (s *authService) RequestVerifyToken(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		// Do not leak which addresses are registered.
		return nil
	}
	if user.IsVerified {
		return nil
	}
	token := newOneTimeToken()
	if err := s.store.SaveOneTime(ctx, PurposeVerify, token, user.ID, s.verifyTTL); err != nil {
		return err
	}
	s.sendMail("verification", s.mailer.SendVerification(ctx, user, token))
	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, token string) (User, error) {
	userID, err := s.store.ConsumeOneTime(ctx, PurposeVerify, token)
	if err != nil {
		return User{}, ErrInvalidToken
	}
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}
	user.IsVerified = true
	if err := s.repo.Update(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil
	}
	token := newOneTimeToken()
	if err := s.store.SaveOneTime(ctx, PurposeReset, token, user.ID, s.resetTTL); err != nil {
		return err
	}
	s.sendMail("password reset", s.mailer.SendPasswordReset(ctx, user, token))
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return ErrInvalidInput
	}
	userID, err := s.store.ConsumeOneTime(ctx, PurposeReset, token)
	if err != nil {
		return ErrInvalidToken
	}
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}
	s.sendMail("password changed", s.mailer.SendPasswordChanged(ctx, user))
	return nil
}

func (s *authService) LoginWithOAuth(ctx context.Context, info OAuthUserInfo) (AuthResult, error) {
	user, err := s.repo.GetByOAuthAccount(ctx, info.Provider, info.AccountID)
	if errors.Is(err, ErrNotFound) {
		user, err = s.loginOAuthFirstTime(ctx, info)
	}
	if err != nil {
		return AuthResult{}, err
	}
	if !user.IsActive {
		return AuthResult{}, ErrUserInactive
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

// loginOAuthFirstTime associates the provider account by email, creating
// the user when the email is unknown. OAuth users are verified by default.
func (s *authService) loginOAuthFirstTime(ctx context.Context, info OAuthUserInfo) (User, error) {
	email := strings.ToLower(info.Email)
	if email == "" {
		return User{}, ErrInvalidCredentials
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		username := strings.TrimSpace(info.Name)
		if username == "" {
			username = strings.SplitN(email, "@", 2)[0]
		}
		user = User{
			ID:           uuid.New(),
			Username:     username,
			Email:        email,
			RegisteredAt: time.Now().UTC(),
			IsActive:     true,
			IsVerified:   true,
			Subscription: SubscriptionFree,
		}
		if info.PictureURL != "" {
			pic := info.PictureURL
			user.ProfilePictureURL = &pic
		}
		if err := s.repo.Create(ctx, user); err != nil {
			return User{}, err
		}
		s.sendMail("welcome", s.mailer.SendWelcome(ctx, user))
	} else if err != nil {
		return User{}, err
	}

	acc := OAuthAccount{
		ID:           uuid.New(),
		UserID:       user.ID,
		Provider:     info.Provider,
		AccountID:    info.AccountID,
		AccountEmail: email,
		AccessToken:  info.AccessToken,
		RefreshToken: info.RefreshToken,
		ExpiresAt:    info.ExpiresAt,
	}
	if err := s.repo.LinkOAuthAccount(ctx, acc); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, p ProfilePatch) (User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}
	if p.Username != nil {
		name := strings.TrimSpace(*p.Username)
		if name == "" || len(name) > 30 {
			return User{}, ErrInvalidInput
		}
		user.Username = name
	}
	if p.Telegram != nil {
		user.Telegram = p.Telegram
	}
	if p.Whatsapp != nil {
		user.Whatsapp = p.Whatsapp
	}
	if p.Linkedin != nil {
		user.Linkedin = p.Linkedin
	}
	if p.PhoneNumber != nil {
		user.PhoneNumber = p.PhoneNumber
	}
	if p.ProfilePictureURL != nil {
		user.ProfilePictureURL = p.ProfilePictureURL
	}
	if p.Subscription != nil {
		if !p.Subscription.Valid() {
			return User{}, ErrInvalidInput
		}
		user.Subscription = *p.Subscription
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *authService) ListUsers(ctx context.Context, limit, offset int) ([]User, error) {
	return s.repo.ListAll(ctx, limit, offset)
}

func (s *authService) SetUserActive(ctx context.Context, id uuid.UUID, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}
