package resume

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hirebase/recruiting/pkg/vacancy"
)

// VacancyDirectory — минимальный доступ к цепочке владения
// (резюме → вакансия → пользователь).
type VacancyDirectory interface {
	GetByID(ctx context.Context, id int64) (vacancy.Vacancy, error)
}

// Guard проверяет, что вызывающий владеет вакансией, к которой
// относится резюме. Выполняется до любой мутации и до выдачи данных
// одиночного чтения.
type Guard struct {
	vacancies VacancyDirectory
}

func NewGuard(vacancies VacancyDirectory) *Guard { return &Guard{vacancies: vacancies} }

// AuthorizeVacancy возвращает вакансию, если она существует и
// принадлежит вызывающему; иначе ErrNotFound / ErrForbidden.
func (g *Guard) AuthorizeVacancy(ctx context.Context, vacancyID int64, callerID uuid.UUID) (vacancy.Vacancy, error) {
	v, err := g.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		if errors.Is(err, vacancy.ErrNotFound) {
			return vacancy.Vacancy{}, ErrNotFound
		}
		return vacancy.Vacancy{}, err
	}
	if v.UserID != callerID {
		return vacancy.Vacancy{}, ErrForbidden
	}
	return v, nil
}

// AuthorizeResume проверяет владение резюме через его вакансию.
func (g *Guard) AuthorizeResume(ctx context.Context, r Resume, callerID uuid.UUID) error {
	_, err := g.AuthorizeVacancy(ctx, r.VacancyID, callerID)
	return err
}
