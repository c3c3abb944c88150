package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hirebase/recruiting/api/http/presenter"
	"github.com/hirebase/recruiting/pkg/resume"
	"github.com/hirebase/recruiting/pkg/vacancy"
)

// currentUserID извлекает идентификатор пользователя, положенный в
// контекст JWT-middleware.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, _ := c.Locals("userId").(string)
	return uuid.Parse(userIDStr)
}

func parseID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

// domainError переводит ошибки доменного слоя в HTTP-статусы.
func domainError(c *fiber.Ctx, err error) error {
	var vErr vacancy.ErrValidation
	switch {
	case resume.IsValidation(err):
		return presenter.Error(c, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &vErr):
		return presenter.Error(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, resume.ErrNotFound), errors.Is(err, vacancy.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "не найдено")
	case errors.Is(err, resume.ErrForbidden):
		return presenter.Error(c, http.StatusForbidden, "недостаточно прав")
	case errors.Is(err, resume.ErrIntegrity):
		return presenter.Error(c, http.StatusConflict, err.Error())
	default:
		return presenter.Error(c, http.StatusInternalServerError, "внутренняя ошибка")
	}
}
