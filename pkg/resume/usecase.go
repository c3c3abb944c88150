package resume

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UseCase — операции над агрегатом резюме и отдельными кандидатами.
// Каждая операция выполняется как одна атомарная единица работы.
type UseCase interface {
	// Create создаёт резюме под вакансией вызывающего вместе с
	// кандидатом и дочерними записями.
	Create(ctx context.Context, callerID uuid.UUID, vacancyID int64, r Resume) (Resume, error)
	GetByID(ctx context.Context, callerID uuid.UUID, id int64) (Resume, error)
	ListByOwner(ctx context.Context, callerID uuid.UUID) ([]Resume, error)
	ListByStage(ctx context.Context, callerID uuid.UUID, vacancyID int64, status Status) ([]Resume, error)
	Update(ctx context.Context, callerID uuid.UUID, p Patch) (Resume, error)
	Delete(ctx context.Context, callerID uuid.UUID, id int64) error
	// ListAny и DeleteAny работают без проверки владения. Только для
	// административной поверхности, никогда не маршрут по умолчанию.
	ListAny(ctx context.Context, limit, offset int) ([]Resume, error)
	DeleteAny(ctx context.Context, id int64) error

	CreateCandidate(ctx context.Context, c Candidate) (Candidate, error)
	GetCandidate(ctx context.Context, id int64) (Candidate, error)
	UpdateCandidate(ctx context.Context, id int64, p CandidatePatch) (Candidate, error)
	DeleteCandidate(ctx context.Context, id int64) error
}

type service struct {
	repo       Repository
	candidates CandidateRepository
	guard      *Guard
	log        *logrus.Logger
}

// NewService собирает движок CRUD агрегата.
func NewService(repo Repository, candidates CandidateRepository, guard *Guard, log *logrus.Logger) UseCase {
	return &service{repo: repo, candidates: candidates, guard: guard, log: log}
}

func (s *service) Create(ctx context.Context, callerID uuid.UUID, vacancyID int64, r Resume) (Resume, error) {
	if r.Status == "" {
		r.Status = StatusInWork
	}
	if err := r.Validate(); err != nil {
		return Resume{}, err
	}
	if _, err := s.guard.AuthorizeVacancy(ctx, vacancyID, callerID); err != nil {
		s.log.WithFields(logrus.Fields{"vacancy_id": vacancyID, "user_id": callerID}).
			Warn("resume create rejected by ownership check")
		return Resume{}, err
	}
	r.VacancyID = vacancyID
	created, err := s.repo.CreateAggregate(ctx, r)
	if err != nil {
		return Resume{}, err
	}
	return created, nil
}

func (s *service) GetByID(ctx context.Context, callerID uuid.UUID, id int64) (Resume, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.WithField("resume_id", id).Warn("resume not found")
		}
		return Resume{}, err
	}
	if err := s.guard.AuthorizeResume(ctx, r, callerID); err != nil {
		s.log.WithFields(logrus.Fields{"resume_id": id, "user_id": callerID}).
			Warn("not enough permissions to read resume")
		return Resume{}, err
	}
	return r, nil
}

func (s *service) ListByOwner(ctx context.Context, callerID uuid.UUID) ([]Resume, error) {
	// Запрос уже ограничен join-ом по владельцу, построчная проверка
	// не нужна.
	return s.repo.ListByOwner(ctx, callerID)
}

func (s *service) ListByStage(ctx context.Context, callerID uuid.UUID, vacancyID int64, status Status) ([]Resume, error) {
	if !status.Valid() {
		return nil, ValidationError{Field: "resume_status", Reason: "unknown enum value"}
	}
	if _, err := s.guard.AuthorizeVacancy(ctx, vacancyID, callerID); err != nil {
		s.log.WithFields(logrus.Fields{"vacancy_id": vacancyID, "user_id": callerID}).
			Warn("not enough permissions to access vacancy")
		return nil, err
	}
	return s.repo.ListByVacancyAndStatus(ctx, vacancyID, status)
}

func (s *service) Update(ctx context.Context, callerID uuid.UUID, p Patch) (Resume, error) {
	if err := p.Validate(); err != nil {
		return Resume{}, err
	}
	r, err := s.GetByID(ctx, callerID, p.ID)
	if err != nil {
		return Resume{}, err
	}
	skipped, err := p.Apply(&r)
	if err != nil {
		return Resume{}, err
	}
	if len(skipped) > 0 {
		s.log.WithFields(logrus.Fields{"resume_id": r.ID, "skipped_ids": skipped}).
			Warn("update skipped child records not belonging to resume")
	}
	if err := s.repo.UpdateAggregate(ctx, r); err != nil {
		return Resume{}, err
	}
	return r, nil
}

func (s *service) Delete(ctx context.Context, callerID uuid.UUID, id int64) error {
	if _, err := s.GetByID(ctx, callerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ListAny(ctx context.Context, limit, offset int) ([]Resume, error) {
	return s.repo.ListAll(ctx, limit, offset)
}

func (s *service) DeleteAny(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) CreateCandidate(ctx context.Context, c Candidate) (Candidate, error) {
	if err := c.Validate(); err != nil {
		return Candidate{}, err
	}
	return s.candidates.Create(ctx, c)
}

func (s *service) GetCandidate(ctx context.Context, id int64) (Candidate, error) {
	c, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.WithField("candidate_id", id).Warn("candidate not found")
		}
		return Candidate{}, err
	}
	return c, nil
}

func (s *service) UpdateCandidate(ctx context.Context, id int64, p CandidatePatch) (Candidate, error) {
	if err := p.Validate(); err != nil {
		return Candidate{}, err
	}
	c, err := s.GetCandidate(ctx, id)
	if err != nil {
		return Candidate{}, err
	}
	p.apply(&c)
	if err := s.candidates.Update(ctx, c); err != nil {
		return Candidate{}, err
	}
	return c, nil
}

func (s *service) DeleteCandidate(ctx context.Context, id int64) error {
	if _, err := s.GetCandidate(ctx, id); err != nil {
		return err
	}
	return s.candidates.Delete(ctx, id)
}
