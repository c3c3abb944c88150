package vacancy

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Vacancy описывает вакансию; владелец — пользователь, создавший её.
// Владение вакансией определяет доступ ко всем её резюме.
type Vacancy struct {
	ID          int64     `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository — порт для работы с вакансиями.
type Repository interface {
	Create(ctx context.Context, v Vacancy) (Vacancy, error)
	// GetByID возвращает вакансию без фильтра владельца: нужна гварду
	// авторизации, чтобы отличать "не найдено" от "чужая".
	GetByID(ctx context.Context, id int64) (Vacancy, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Vacancy, error)
	UpdateForOwner(ctx context.Context, ownerID uuid.UUID, v Vacancy) error
	DeleteForOwner(ctx context.Context, ownerID uuid.UUID, id int64) error
	// Админ-доступ без фильтра владельца
	ListAll(ctx context.Context, limit, offset int) ([]Vacancy, error)
	DeleteAny(ctx context.Context, id int64) error
}
