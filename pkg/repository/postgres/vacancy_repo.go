package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hirebase/recruiting/pkg/vacancy"
)

// VacancyRepository хранит вакансии.
type VacancyRepository struct {
	pool *pgxpool.Pool
}

func NewVacancyRepository(pool *pgxpool.Pool) *VacancyRepository {
	return &VacancyRepository{pool: pool}
}

func (r *VacancyRepository) Create(ctx context.Context, v vacancy.Vacancy) (vacancy.Vacancy, error) {
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	row := r.pool.QueryRow(ctx, `
INSERT INTO vacancy (user_id, title, description, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id
`, v.UserID, strings.TrimSpace(v.Title), v.Description, v.CreatedAt)
	if err := row.Scan(&v.ID); err != nil {
		return vacancy.Vacancy{}, err
	}
	return v, nil
}

func (r *VacancyRepository) GetByID(ctx context.Context, id int64) (vacancy.Vacancy, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, title, description, created_at FROM vacancy WHERE id = $1
`, id)
	var v vacancy.Vacancy
	var created time.Time
	if err := row.Scan(&v.ID, &v.UserID, &v.Title, &v.Description, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacancy.Vacancy{}, vacancy.ErrNotFound
		}
		return vacancy.Vacancy{}, err
	}
	v.CreatedAt = created.UTC()
	return v, nil
}

func (r *VacancyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]vacancy.Vacancy, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, title, description, created_at FROM vacancy
WHERE user_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVacancies(rows)
}

func (r *VacancyRepository) ListAll(ctx context.Context, limit, offset int) ([]vacancy.Vacancy, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, title, description, created_at FROM vacancy
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVacancies(rows)
}

func collectVacancies(rows pgx.Rows) ([]vacancy.Vacancy, error) {
	var res []vacancy.Vacancy
	for rows.Next() {
		var v vacancy.Vacancy
		var created time.Time
		if err := rows.Scan(&v.ID, &v.UserID, &v.Title, &v.Description, &created); err != nil {
			return nil, err
		}
		v.CreatedAt = created.UTC()
		res = append(res, v)
	}
	return res, rows.Err()
}

func (r *VacancyRepository) UpdateForOwner(ctx context.Context, ownerID uuid.UUID, v vacancy.Vacancy) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE vacancy SET title = $3, description = $4 WHERE id = $1 AND user_id = $2
`, v.ID, ownerID, strings.TrimSpace(v.Title), v.Description)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return vacancy.ErrNotFound
	}
	return nil
}

func (r *VacancyRepository) DeleteForOwner(ctx context.Context, ownerID uuid.UUID, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM vacancy WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return vacancy.ErrNotFound
	}
	return nil
}

func (r *VacancyRepository) DeleteAny(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM vacancy WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return vacancy.ErrNotFound
	}
	return nil
}
