package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hirebase/recruiting/pkg/resume"
)

// CandidateRepository хранит кандидатов вне агрегата резюме.
type CandidateRepository struct {
	pool *pgxpool.Pool
}

func NewCandidateRepository(pool *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{pool: pool}
}

const candidateColumns = `id, first_name, last_name, age, gender, city, about,
	telegram, whatsapp, linkedin, github, email, phone_number, profile_picture_url`

func scanCandidate(row pgx.Row) (resume.Candidate, error) {
	var c resume.Candidate
	var gender *string
	if err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Age, &gender, &c.City, &c.About,
		&c.Telegram, &c.Whatsapp, &c.Linkedin, &c.Github, &c.Email, &c.PhoneNumber,
		&c.ProfilePictureURL,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Candidate{}, resume.ErrNotFound
		}
		return resume.Candidate{}, err
	}
	if gender != nil {
		g := resume.Gender(*gender)
		c.Gender = &g
	}
	return c, nil
}

func genderArg(c resume.Candidate) *string {
	if c.Gender == nil {
		return nil
	}
	g := string(*c.Gender)
	return &g
}

func (r *CandidateRepository) Create(ctx context.Context, c resume.Candidate) (resume.Candidate, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO candidate (first_name, last_name, age, gender, city, about,
	telegram, whatsapp, linkedin, github, email, phone_number, profile_picture_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id
`, c.FirstName, c.LastName, c.Age, genderArg(c), c.City, c.About,
		c.Telegram, c.Whatsapp, c.Linkedin, c.Github, c.Email, c.PhoneNumber, c.ProfilePictureURL)
	if err := row.Scan(&c.ID); err != nil {
		return resume.Candidate{}, err
	}
	return c, nil
}

func (r *CandidateRepository) GetByID(ctx context.Context, id int64) (resume.Candidate, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidate WHERE id = $1`, id)
	return scanCandidate(row)
}

func (r *CandidateRepository) Update(ctx context.Context, c resume.Candidate) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE candidate SET first_name = $2, last_name = $3, age = $4, gender = $5, city = $6, about = $7,
	telegram = $8, whatsapp = $9, linkedin = $10, github = $11, email = $12, phone_number = $13,
	profile_picture_url = $14
WHERE id = $1
`, c.ID, c.FirstName, c.LastName, c.Age, genderArg(c), c.City, c.About,
		c.Telegram, c.Whatsapp, c.Linkedin, c.Github, c.Email, c.PhoneNumber, c.ProfilePictureURL)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

// Delete удаляет кандидата; его резюме (если есть) уходит каскадом по
// внешнему ключу resume.candidate_id.
func (r *CandidateRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM candidate WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}
