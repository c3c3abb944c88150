package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hirebase/recruiting/api/http/presenter"
	"github.com/hirebase/recruiting/pkg/vacancy"
)

type VacancyHandler struct {
	uc vacancy.UseCase
}

func NewVacancyHandler(uc vacancy.UseCase) *VacancyHandler { return &VacancyHandler{uc: uc} }

type vacancyInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// @Summary Создать вакансию
// @Tags    Вакансии
// @Accept  json
// @Produce json
// @Param   input body vacancyInput true "Вакансия"
// @Security BearerAuth
// @Success 201 {object} vacancy.Vacancy
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /vacancy [post]
func (h *VacancyHandler) Create(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	var req vacancyInput
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	v, err := h.uc.Create(c.Context(), vacancy.Vacancy{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, v)
}

// @Summary Получить вакансию по ID
// @Tags    Вакансии
// @Produce json
// @Param   id path int true "ID вакансии"
// @Security BearerAuth
// @Success 200 {object} vacancy.Vacancy
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /vacancy/{id} [get]
func (h *VacancyHandler) GetByID(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный ID")
	}
	v, err := h.uc.GetByID(c.Context(), uid, id)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, v)
}

// @Summary Список вакансий вызывающего
// @Tags    Вакансии
// @Produce json
// @Param   limit query int false "Размер страницы (по умолчанию 50)"
// @Param   offset query int false "Смещение"
// @Security BearerAuth
// @Success 200 {array} vacancy.Vacancy
// @Router  /vacancy [get]
func (h *VacancyHandler) List(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	limit, offset := parseLimitOffset(c, 50)
	list, err := h.uc.List(c.Context(), uid, limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, list)
}

// @Summary Обновить вакансию
// @Tags    Вакансии
// @Accept  json
// @Produce json
// @Param   id path int true "ID вакансии"
// @Param   input body vacancyInput true "Новые значения"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /vacancy/{id} [put]
func (h *VacancyHandler) Update(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный ID")
	}
	var req vacancyInput
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	err = h.uc.Update(c.Context(), uid, vacancy.Vacancy{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": fmt.Sprintf("Vacancy with id %d updated.", id),
	})
}

// @Summary Удалить вакансию
// @Description Вместе с вакансией каскадно удаляются все её резюме.
// @Tags    Вакансии
// @Produce json
// @Param   id path int true "ID вакансии"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /vacancy/{id} [delete]
func (h *VacancyHandler) Delete(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный ID")
	}
	if err := h.uc.Delete(c.Context(), uid, id); err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": fmt.Sprintf("Vacancy with id %d deleted.", id),
	})
}
