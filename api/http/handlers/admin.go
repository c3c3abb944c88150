package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hirebase/recruiting/api/http/presenter"
	"github.com/hirebase/recruiting/pkg/auth"
	"github.com/hirebase/recruiting/pkg/resume"
	"github.com/hirebase/recruiting/pkg/vacancy"
)

// AdminHandler обслуживает административную поверхность. Все маршруты
// регистрируются за RequireAdmin.
type AdminHandler struct {
	users     auth.AuthUseCase
	vacancies vacancy.UseCase
	resumes   resume.UseCase
}

func NewAdminHandler(users auth.AuthUseCase, vacancies vacancy.UseCase, resumes resume.UseCase) *AdminHandler {
	return &AdminHandler{users: users, vacancies: vacancies, resumes: resumes}
}

// @Summary Список пользователей
// @Tags    Администрирование
// @Produce json
// @Param   limit query int false "Размер страницы (по умолчанию 50)"
// @Param   offset query int false "Смещение"
// @Security BearerAuth
// @Success 200 {array} auth.User
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	list, err := h.users.ListUsers(c.Context(), limit, offset)
	if err != nil {
		return authError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, list)
}

type setActiveInput struct {
	IsActive bool `json:"is_active"`
}

// @Summary Включить или отключить пользователя
// @Tags    Администрирование
// @Accept  json
// @Produce json
// @Param   id path string true "UUID пользователя"
// @Param   input body setActiveInput true "Новое состояние"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/users/{id}/active [put]
func (h *AdminHandler) SetUserActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	var req setActiveInput
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if err := h.users.SetUserActive(c.Context(), id, req.IsActive); err != nil {
		return authError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": fmt.Sprintf("User %s active=%t.", id, req.IsActive),
	})
}

// @Summary Список всех вакансий
// @Tags    Администрирование
// @Produce json
// @Param   limit query int false "Размер страницы (по умолчанию 50)"
// @Param   offset query int false "Смещение"
// @Security BearerAuth
// @Success 200 {array} vacancy.Vacancy
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /admin/vacancy [get]
func (h *AdminHandler) ListVacancies(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	list, err := h.vacancies.ListAdmin(c.Context(), limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, list)
}

// @Summary Удалить вакансию без проверки владения
// @Tags    Администрирование
// @Produce json
// @Param   id path int true "ID вакансии"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/vacancy/{id} [delete]
func (h *AdminHandler) DeleteVacancy(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный ID")
	}
	if err := h.vacancies.DeleteAdmin(c.Context(), id); err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": fmt.Sprintf("Vacancy with id %d deleted.", id),
	})
}

// @Summary Список всех резюме
// @Tags    Администрирование
// @Produce json
// @Param   limit query int false "Размер страницы (по умолчанию 50)"
// @Param   offset query int false "Смещение"
// @Security BearerAuth
// @Success 200 {array} resume.Resume
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /admin/resume [get]
func (h *AdminHandler) ListResumes(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	list, err := h.resumes.ListAny(c.Context(), limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, list)
}

// @Summary Удалить резюме без проверки владения
// @Tags    Администрирование
// @Produce json
// @Param   id path int true "ID резюме"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/resume/{id} [delete]
func (h *AdminHandler) DeleteResume(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный ID")
	}
	if err := h.resumes.DeleteAny(c.Context(), id); err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": fmt.Sprintf("Resume with id %d deleted.", id),
	})
}
