package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hirebase/recruiting/pkg/resume"
)

// ResumeRepository хранит агрегат резюме: резюме, кандидата и дочерние
// записи. Каждая операция записи — одна транзакция.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) *ResumeRepository {
	return &ResumeRepository{pool: pool}
}

const resumeColumns = `id, candidate_id, vacancy_id, resume_status, rating, job_title,
	expected_salary, interest_in_job, skills, ready_to_relocate, ready_for_business_trips`

const dateLayout = "2006-01-02"

func scanResume(row pgx.Row) (resume.Resume, error) {
	var r resume.Resume
	var status string
	var interest *string
	if err := row.Scan(
		&r.ID, &r.CandidateID, &r.VacancyID, &status, &r.Rating, &r.JobTitle,
		&r.ExpectedSalary, &interest, &r.Skills, &r.ReadyToRelocate, &r.ReadyForBusinessTrips,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, resume.ErrNotFound
		}
		return resume.Resume{}, err
	}
	r.Status = resume.Status(status)
	if interest != nil {
		i := resume.InterestInJob(*interest)
		r.InterestInJob = &i
	}
	return r, nil
}

func interestArg(r resume.Resume) *string {
	if r.InterestInJob == nil {
		return nil
	}
	i := string(*r.InterestInJob)
	return &i
}

// CreateAggregate вставляет кандидата, резюме и дочерние записи в одной
// транзакции: частично созданный агрегат не наблюдаем снаружи.
func (repo *ResumeRepository) CreateAggregate(ctx context.Context, r resume.Resume) (resume.Resume, error) {
	tx, err := repo.pool.Begin(ctx)
	if err != nil {
		return resume.Resume{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	c := r.Candidate
	row := tx.QueryRow(ctx, `
INSERT INTO candidate (first_name, last_name, age, gender, city, about,
	telegram, whatsapp, linkedin, github, email, phone_number, profile_picture_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id
`, c.FirstName, c.LastName, c.Age, genderArg(c), c.City, c.About,
		c.Telegram, c.Whatsapp, c.Linkedin, c.Github, c.Email, c.PhoneNumber, c.ProfilePictureURL)
	if err := row.Scan(&r.Candidate.ID); err != nil {
		return resume.Resume{}, err
	}
	r.CandidateID = r.Candidate.ID

	row = tx.QueryRow(ctx, `
INSERT INTO resume (candidate_id, vacancy_id, resume_status, rating, job_title,
	expected_salary, interest_in_job, skills, ready_to_relocate, ready_for_business_trips)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id
`, r.CandidateID, r.VacancyID, string(r.Status), r.Rating, r.JobTitle,
		r.ExpectedSalary, interestArg(r), r.Skills, r.ReadyToRelocate, r.ReadyForBusinessTrips)
	if err := row.Scan(&r.ID); err != nil {
		return resume.Resume{}, err
	}

	for i := range r.Educations {
		e := &r.Educations[i]
		e.ResumeID = r.ID
		row = tx.QueryRow(ctx, `
INSERT INTO education (resume_id, educational_institution, degree, year, specialization)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, e.ResumeID, e.EducationalInstitution, string(e.Degree), e.Year, e.Specialization)
		if err := row.Scan(&e.ID); err != nil {
			return resume.Resume{}, err
		}
	}

	for i := range r.Experiences {
		w := &r.Experiences[i]
		w.ResumeID = r.ID
		start, err := time.Parse(dateLayout, w.StartDate)
		if err != nil {
			return resume.Resume{}, err
		}
		end, err := time.Parse(dateLayout, w.EndDate)
		if err != nil {
			return resume.Resume{}, err
		}
		row = tx.QueryRow(ctx, `
INSERT INTO work_experience (resume_id, company, start_date, end_date, description)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, w.ResumeID, w.Company, start, end, w.Description)
		if err := row.Scan(&w.ID); err != nil {
			return resume.Resume{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return resume.Resume{}, err
	}
	return r, nil
}

func (repo *ResumeRepository) GetByID(ctx context.Context, id int64) (resume.Resume, error) {
	row := repo.pool.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resume WHERE id = $1`, id)
	r, err := scanResume(row)
	if err != nil {
		return resume.Resume{}, err
	}
	list := []resume.Resume{r}
	if err := repo.loadNested(ctx, list); err != nil {
		return resume.Resume{}, err
	}
	return list[0], nil
}

func (repo *ResumeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]resume.Resume, error) {
	rows, err := repo.pool.Query(ctx, `
SELECT r.id, r.candidate_id, r.vacancy_id, r.resume_status, r.rating, r.job_title,
	r.expected_salary, r.interest_in_job, r.skills, r.ready_to_relocate, r.ready_for_business_trips
FROM resume r
JOIN vacancy v ON v.id = r.vacancy_id
WHERE v.user_id = $1
ORDER BY r.id
`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return repo.collectAggregates(ctx, rows)
}

func (repo *ResumeRepository) ListAll(ctx context.Context, limit, offset int) ([]resume.Resume, error) {
	rows, err := repo.pool.Query(ctx, `
SELECT `+resumeColumns+` FROM resume
ORDER BY id
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return repo.collectAggregates(ctx, rows)
}

func (repo *ResumeRepository) ListByVacancyAndStatus(ctx context.Context, vacancyID int64, status resume.Status) ([]resume.Resume, error) {
	rows, err := repo.pool.Query(ctx, `
SELECT `+resumeColumns+` FROM resume
WHERE vacancy_id = $1 AND resume_status = $2
ORDER BY id
`, vacancyID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return repo.collectAggregates(ctx, rows)
}

func (repo *ResumeRepository) collectAggregates(ctx context.Context, rows pgx.Rows) ([]resume.Resume, error) {
	var res []resume.Resume
	for rows.Next() {
		r, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := repo.loadNested(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// loadNested догружает кандидатов и дочерние записи одним запросом на
// таблицу для всех резюме из списка.
func (repo *ResumeRepository) loadNested(ctx context.Context, list []resume.Resume) error {
	if len(list) == 0 {
		return nil
	}
	byResume := make(map[int64]*resume.Resume, len(list))
	byCandidate := make(map[int64]*resume.Resume, len(list))
	resumeIDs := make([]int64, 0, len(list))
	candidateIDs := make([]int64, 0, len(list))
	for i := range list {
		byResume[list[i].ID] = &list[i]
		byCandidate[list[i].CandidateID] = &list[i]
		resumeIDs = append(resumeIDs, list[i].ID)
		candidateIDs = append(candidateIDs, list[i].CandidateID)
	}

	rows, err := repo.pool.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidate WHERE id = ANY($1)`, candidateIDs)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return err
		}
		if r, ok := byCandidate[c.ID]; ok {
			r.Candidate = c
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	eduRows, err := repo.pool.Query(ctx, `
SELECT id, resume_id, educational_institution, degree, year, specialization
FROM education WHERE resume_id = ANY($1) ORDER BY id
`, resumeIDs)
	if err != nil {
		return err
	}
	defer eduRows.Close()
	for eduRows.Next() {
		var e resume.Education
		var degree string
		if err := eduRows.Scan(&e.ID, &e.ResumeID, &e.EducationalInstitution, &degree, &e.Year, &e.Specialization); err != nil {
			return err
		}
		e.Degree = resume.Degree(degree)
		if r, ok := byResume[e.ResumeID]; ok {
			r.Educations = append(r.Educations, e)
		}
	}
	if err := eduRows.Err(); err != nil {
		return err
	}

	expRows, err := repo.pool.Query(ctx, `
SELECT id, resume_id, company, start_date, end_date, description
FROM work_experience WHERE resume_id = ANY($1) ORDER BY id
`, resumeIDs)
	if err != nil {
		return err
	}
	defer expRows.Close()
	for expRows.Next() {
		var w resume.WorkExperience
		var start, end time.Time
		if err := expRows.Scan(&w.ID, &w.ResumeID, &w.Company, &start, &end, &w.Description); err != nil {
			return err
		}
		w.StartDate = start.Format(dateLayout)
		w.EndDate = end.Format(dateLayout)
		if r, ok := byResume[w.ResumeID]; ok {
			r.Experiences = append(r.Experiences, w)
		}
	}
	return expRows.Err()
}

// UpdateAggregate сохраняет резюме, кандидата и дочерние записи одной
// транзакцией. Дочерние UPDATE дополнительно фильтруются по resume_id.
func (repo *ResumeRepository) UpdateAggregate(ctx context.Context, r resume.Resume) error {
	tx, err := repo.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, `
UPDATE resume SET resume_status = $2, rating = $3, job_title = $4, expected_salary = $5,
	interest_in_job = $6, skills = $7, ready_to_relocate = $8, ready_for_business_trips = $9
WHERE id = $1
`, r.ID, string(r.Status), r.Rating, r.JobTitle, r.ExpectedSalary,
		interestArg(r), r.Skills, r.ReadyToRelocate, r.ReadyForBusinessTrips)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return resume.ErrNotFound
	}

	c := r.Candidate
	cmd, err = tx.Exec(ctx, `
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
		return resume.ErrIntegrity
	}

	for _, e := range r.Educations {
		_, err := tx.Exec(ctx, `
UPDATE education SET educational_institution = $3, degree = $4, year = $5, specialization = $6
WHERE id = $1 AND resume_id = $2
`, e.ID, r.ID, e.EducationalInstitution, string(e.Degree), e.Year, e.Specialization)
		if err != nil {
			return err
		}
	}

	for _, w := range r.Experiences {
		start, err := time.Parse(dateLayout, w.StartDate)
		if err != nil {
			return err
		}
		end, err := time.Parse(dateLayout, w.EndDate)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
UPDATE work_experience SET company = $3, start_date = $4, end_date = $5, description = $6
WHERE id = $1 AND resume_id = $2
`, w.ID, r.ID, w.Company, start, end, w.Description)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete удаляет резюме и его кандидата в одной транзакции; записи об
// образовании и опыте уходят каскадом по resume_id.
func (repo *ResumeRepository) Delete(ctx context.Context, id int64) error {
	tx, err := repo.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var candidateID int64
	row := tx.QueryRow(ctx, `SELECT candidate_id FROM resume WHERE id = $1`, id)
	if err := row.Scan(&candidateID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.ErrNotFound
		}
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM resume WHERE id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM candidate WHERE id = $1`, candidateID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
