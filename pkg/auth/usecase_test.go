package auth

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	byID    map[uuid.UUID]User
	byEmail map[string]uuid.UUID
	oauth   map[string]uuid.UUID // provider:accountID
	linked  []OAuthAccount
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:    map[uuid.UUID]User{},
		byEmail: map[string]uuid.UUID{},
		oauth:   map[string]uuid.UUID{},
	}
}

func (m *memUserRepo) Create(_ context.Context, u User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return ErrUserAlreadyExists
	}
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u.ID
	return nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	id, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return m.byID[id], nil
}

func (m *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (User, error) {
	u, ok := m.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) Update(_ context.Context, u User) error {
	if _, ok := m.byID[u.ID]; !ok {
		return ErrNotFound
	}
	m.byID[u.ID] = u
	return nil
}

func (m *memUserRepo) LinkOAuthAccount(_ context.Context, acc OAuthAccount) error {
	m.oauth[acc.Provider+":"+acc.AccountID] = acc.UserID
	m.linked = append(m.linked, acc)
	return nil
}

func (m *memUserRepo) GetByOAuthAccount(_ context.Context, provider, accountID string) (User, error) {
	id, ok := m.oauth[provider+":"+accountID]
	if !ok {
		return User{}, ErrNotFound
	}
	return m.byID[id], nil
}

func (m *memUserRepo) ListAll(_ context.Context, limit, offset int) ([]User, error) {
	out := make([]User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	u, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.IsActive = active
	m.byID[id] = u
	return nil
}

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, u User) (string, error) {
	return "jwt-" + u.ID.String(), nil
}

// plainHasher keeps hashes readable in test failures.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hash:" + p, nil }
func (plainHasher) Verify(hash, p string) bool    { return hash == "hash:"+p }

type memTokenStore struct {
	oneTime     map[string]uuid.UUID
	blacklisted map[string]bool
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{oneTime: map[string]uuid.UUID{}, blacklisted: map[string]bool{}}
}

func (m *memTokenStore) SaveOneTime(_ context.Context, purpose, token string, userID uuid.UUID, _ time.Duration) error {
	m.oneTime[purpose+":"+token] = userID
	return nil
}

func (m *memTokenStore) ConsumeOneTime(_ context.Context, purpose, token string) (uuid.UUID, error) {
	key := purpose + ":" + token
	id, ok := m.oneTime[key]
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	delete(m.oneTime, key)
	return id, nil
}

func (m *memTokenStore) BlacklistJTI(_ context.Context, jti string, _ time.Time) error {
	m.blacklisted[jti] = true
	return nil
}

func (m *memTokenStore) JTIBlacklisted(_ context.Context, jti string) (bool, error) {
	return m.blacklisted[jti], nil
}

type recordingMailer struct {
	welcome      int
	loginNotice  int
	verification []string
	reset        []string
	changed      int
}

func (m *recordingMailer) SendWelcome(context.Context, User) error { m.welcome++; return nil }
func (m *recordingMailer) SendLoginNotice(context.Context, User) error {
	m.loginNotice++
	return nil
}
func (m *recordingMailer) SendVerification(_ context.Context, _ User, token string) error {
	m.verification = append(m.verification, token)
	return nil
}
func (m *recordingMailer) SendPasswordReset(_ context.Context, _ User, token string) error {
	m.reset = append(m.reset, token)
	return nil
}
func (m *recordingMailer) SendPasswordChanged(context.Context, User) error {
	m.changed++
	return nil
}

type fixture struct {
	repo   *memUserRepo
	store  *memTokenStore
	mailer *recordingMailer
	uc     AuthUseCase
}

func newFixture() fixture {
	log := logrus.New()
	log.SetOutput(io.Discard)
	repo := newMemUserRepo()
	store := newMemTokenStore()
	mailer := &recordingMailer{}
	uc := NewAuthService(repo, staticTokens{}, plainHasher{}, store, mailer, log, time.Hour, time.Hour)
	return fixture{repo: repo, store: store, mailer: mailer, uc: uc}
}

func TestRegister_CreatesActiveUnverifiedUser(t *testing.T) {
	f := newFixture()

	res, err := f.uc.Register(context.Background(), "  Jane@Example.COM ", "jane", "secret")
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", res.User.Email)
	require.True(t, res.User.IsActive)
	require.False(t, res.User.IsVerified)
	require.False(t, res.User.IsSuperuser)
	require.Equal(t, SubscriptionFree, res.User.Subscription)
	require.NotEmpty(t, res.Token)

	require.Equal(t, 1, f.mailer.welcome)
	require.Len(t, f.mailer.verification, 1)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Register(context.Background(), "jane@example.com", "jane", "secret")
	require.NoError(t, err)
	_, err = f.uc.Register(context.Background(), "jane@example.com", "other", "secret")
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegister_EmptyFields(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Register(context.Background(), "", "jane", "secret")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Register(context.Background(), "jane@example.com", "jane", "secret")
	require.NoError(t, err)

	_, err = f.uc.Login(context.Background(), "jane@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Login(context.Background(), "nobody@example.com", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	f := newFixture()
	res, err := f.uc.Register(context.Background(), "jane@example.com", "jane", "secret")
	require.NoError(t, err)
	require.NoError(t, f.repo.SetActive(context.Background(), res.User.ID, false))

	_, err = f.uc.Login(context.Background(), "jane@example.com", "secret")
	require.ErrorIs(t, err, ErrUserInactive)
}

func TestLogin_SendsNotice(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Register(context.Background(), "jane@example.com", "jane", "secret")
	require.NoError(t, err)

	res, err := f.uc.Login(context.Background(), "jane@example.com", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, 1, f.mailer.loginNotice)
}

func TestLogout_BlacklistsJTI(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.uc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)))
	revoked, err := f.store.JTIBlacklisted(context.Background(), "jti-1")
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestVerifyEmail_ConsumesToken(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Register(context.Background(), "jane@example.com", "jane", "secret")
	require.NoError(t, err)
	require.Len(t, f.mailer.verification, 1)

	token := f.mailer.verification[0]
	user, err := f.uc.VerifyEmail(context.Background(), token)
	require.NoError(t, err)
	require.True(t, user.IsVerified)

	// Second use of the same token must fail.
	_, err = f.uc.VerifyEmail(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequestVerifyToken_UnknownEmailSilent(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.uc.RequestVerifyToken(context.Background(), "nobody@example.com"))
	require.Empty(t, f.mailer.verification)
}

func TestRequestVerifyToken_AlreadyVerifiedSilent(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Register(context.Background(), "jane@example.com", "jane", "secret")
	require.NoError(t, err)
	_, err = f.uc.VerifyEmail(context.Background(), f.mailer.verification[0])
	require.NoError(t, err)

	require.NoError(t, f.uc.RequestVerifyToken(context.Background(), "jane@example.com"))
	require.Len(t, f.mailer.verification, 1)
}

func TestResetPassword_FullFlow(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Register(context.Background(), "jane@example.com", "jane", "secret")
	require.NoError(t, err)

	require.NoError(t, f.uc.ForgotPassword(context.Background(), "jane@example.com"))
	require.Len(t, f.mailer.reset, 1)

	require.NoError(t, f.uc.ResetPassword(context.Background(), f.mailer.reset[0], "newsecret"))
	require.Equal(t, 1, f.mailer.changed)

	_, err = f.uc.Login(context.Background(), "jane@example.com", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.uc.Login(context.Background(), "jane@example.com", "newsecret")
	require.NoError(t, err)
}

func TestForgotPassword_UnknownEmailSilent(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.uc.ForgotPassword(context.Background(), "nobody@example.com"))
	require.Empty(t, f.mailer.reset)
}

func TestLoginWithOAuth_CreatesVerifiedUser(t *testing.T) {
	f := newFixture()

	res, err := f.uc.LoginWithOAuth(context.Background(), OAuthUserInfo{
		Provider:  "google",
		AccountID: "acc-1",
		Email:     "Jane@Example.com",
		Name:      "Jane",
	})
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", res.User.Email)
	require.True(t, res.User.IsVerified)
	require.True(t, res.User.IsActive)
	require.Len(t, f.repo.linked, 1)
	require.Equal(t, res.User.ID, f.repo.linked[0].UserID)
}

func TestLoginWithOAuth_AssociatesByEmail(t *testing.T) {
	f := newFixture()
	registered, err := f.uc.Register(context.Background(), "jane@example.com", "jane", "secret")
	require.NoError(t, err)

	res, err := f.uc.LoginWithOAuth(context.Background(), OAuthUserInfo{
		Provider:  "google",
		AccountID: "acc-1",
		Email:     "jane@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, res.User.ID)

	// Subsequent logins resolve through the linked account.
	again, err := f.uc.LoginWithOAuth(context.Background(), OAuthUserInfo{
		Provider:  "google",
		AccountID: "acc-1",
		Email:     "jane@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, again.User.ID)
	require.Len(t, f.repo.linked, 1)
}

func TestUpdateProfile_PartialAndValidation(t *testing.T) {
	f := newFixture()
	res, err := f.uc.Register(context.Background(), "jane@example.com", "jane", "secret")
	require.NoError(t, err)

	tg := "https://t.me/jane"
	updated, err := f.uc.UpdateProfile(context.Background(), res.User.ID, ProfilePatch{Telegram: &tg})
	require.NoError(t, err)
	require.Equal(t, "jane", updated.Username)
	require.Equal(t, tg, *updated.Telegram)

	empty := "   "
	_, err = f.uc.UpdateProfile(context.Background(), res.User.ID, ProfilePatch{Username: &empty})
	require.ErrorIs(t, err, ErrInvalidInput)

	bad := SubscriptionType("gold")
	_, err = f.uc.UpdateProfile(context.Background(), res.User.ID, ProfilePatch{Subscription: &bad})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetUserActive_RoundTrip(t *testing.T) {
	f := newFixture()
	res, err := f.uc.Register(context.Background(), "jane@example.com", "jane", "secret")
	require.NoError(t, err)

	require.NoError(t, f.uc.SetUserActive(context.Background(), res.User.ID, false))
	u, err := f.uc.Profile(context.Background(), res.User.ID)
	require.NoError(t, err)
	require.False(t, u.IsActive)

	require.ErrorIs(t, f.uc.SetUserActive(context.Background(), uuid.New(), false), ErrNotFound)
}
