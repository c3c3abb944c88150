package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hirebase/recruiting/pkg/auth"
)

// UserRepository implements auth.UserRepository backed by PostgreSQL (pgx).
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, registered_at, is_active, is_superuser, is_verified,
	telegram, whatsapp, linkedin, phone_number, subscription_type, profile_picture_url`

func scanUser(row pgx.Row) (auth.User, error) {
	var user auth.User
	var registeredAt time.Time
	var subscription string
	if err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &registeredAt,
		&user.IsActive, &user.IsSuperuser, &user.IsVerified,
		&user.Telegram, &user.Whatsapp, &user.Linkedin, &user.PhoneNumber,
		&subscription, &user.ProfilePictureURL,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	user.RegisteredAt = registeredAt.UTC()
	user.Subscription = auth.SubscriptionType(subscription)
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO users (id, username, email, password_hash, registered_at, is_active, is_superuser, is_verified,
	telegram, whatsapp, linkedin, phone_number, subscription_type, profile_picture_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`, user.ID, user.Username, strings.ToLower(user.Email), user.PasswordHash, user.RegisteredAt,
		user.IsActive, user.IsSuperuser, user.IsVerified,
		user.Telegram, user.Whatsapp, user.Linkedin, user.PhoneNumber,
		string(user.Subscription), user.ProfilePictureURL)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return auth.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(email))
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) Update(ctx context.Context, user auth.User) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE users SET username = $2, email = $3, password_hash = $4, is_active = $5, is_superuser = $6,
	is_verified = $7, telegram = $8, whatsapp = $9, linkedin = $10, phone_number = $11,
	subscription_type = $12, profile_picture_url = $13
WHERE id = $1
`, user.ID, user.Username, strings.ToLower(user.Email), user.PasswordHash,
		user.IsActive, user.IsSuperuser, user.IsVerified,
		user.Telegram, user.Whatsapp, user.Linkedin, user.PhoneNumber,
		string(user.Subscription), user.ProfilePictureURL)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}

func (r *UserRepository) LinkOAuthAccount(ctx context.Context, acc auth.OAuthAccount) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO oauth_account (id, user_id, provider, account_id, account_email, access_token, refresh_token, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (provider, account_id) DO UPDATE SET
	account_email = EXCLUDED.account_email,
	access_token = EXCLUDED.access_token,
	refresh_token = EXCLUDED.refresh_token,
	expires_at = EXCLUDED.expires_at
`, acc.ID, acc.UserID, acc.Provider, acc.AccountID, acc.AccountEmail,
		acc.AccessToken, acc.RefreshToken, acc.ExpiresAt)
	return err
}

func (r *UserRepository) GetByOAuthAccount(ctx context.Context, provider, accountID string) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `
SELECT u.id, u.username, u.email, u.password_hash, u.registered_at, u.is_active, u.is_superuser, u.is_verified,
	u.telegram, u.whatsapp, u.linkedin, u.phone_number, u.subscription_type, u.profile_picture_url
FROM users u
JOIN oauth_account oa ON oa.user_id = u.id
WHERE oa.provider = $1 AND oa.account_id = $2
`, provider, accountID)
	return scanUser(row)
}

func (r *UserRepository) ListAll(ctx context.Context, limit, offset int) ([]auth.User, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY registered_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []auth.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, user)
	}
	return res, rows.Err()
}

func (r *UserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE users SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return auth.ErrNotFound
	}
	return nil
}
