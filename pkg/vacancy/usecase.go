package vacancy

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// UseCase инкапсулирует приложение для работы с вакансиями.
type UseCase interface {
	Create(ctx context.Context, v Vacancy) (Vacancy, error)
	GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (Vacancy, error)
	GetByIDAdmin(ctx context.Context, id int64) (Vacancy, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Vacancy, error)
	ListAdmin(ctx context.Context, limit, offset int) ([]Vacancy, error)
	Update(ctx context.Context, ownerID uuid.UUID, v Vacancy) error
	Delete(ctx context.Context, ownerID uuid.UUID, id int64) error
	DeleteAdmin(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, v Vacancy) (Vacancy, error) {
	v.Title = strings.TrimSpace(v.Title)
	if v.Title == "" {
		return Vacancy{}, ErrValidation("title is required")
	}
	return s.repo.Create(ctx, v)
}

func (s *service) GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (Vacancy, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Vacancy{}, err
	}
	if v.UserID != ownerID {
		return Vacancy{}, ErrNotFound
	}
	return v, nil
}

func (s *service) GetByIDAdmin(ctx context.Context, id int64) (Vacancy, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Vacancy, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) ListAdmin(ctx context.Context, limit, offset int) ([]Vacancy, error) {
	return s.repo.ListAll(ctx, limit, offset)
}

func (s *service) Update(ctx context.Context, ownerID uuid.UUID, v Vacancy) error {
	v.Title = strings.TrimSpace(v.Title)
	if v.Title == "" {
		return ErrValidation("title is required")
	}
	return s.repo.UpdateForOwner(ctx, ownerID, v)
}

func (s *service) Delete(ctx context.Context, ownerID uuid.UUID, id int64) error {
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}

func (s *service) DeleteAdmin(ctx context.Context, id int64) error {
	return s.repo.DeleteAny(ctx, id)
}

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
