package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hirebase/recruiting/api/http/presenter"
	"github.com/hirebase/recruiting/pkg/resume"
)

type CandidateHandler struct {
	uc resume.UseCase
}

func NewCandidateHandler(uc resume.UseCase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

// @Summary Создать кандидата
// @Description Создаёт кандидата вне агрегата резюме.
// @Tags    Кандидаты
// @Accept  json
// @Produce json
// @Param   input body resume.Candidate true "Кандидат"
// @Security BearerAuth
// @Success 201 {object} resume.Candidate
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /candidate [post]
func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var req resume.Candidate
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	created, err := h.uc.CreateCandidate(c.Context(), req)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// @Summary Получить кандидата по ID
// @Tags    Кандидаты
// @Produce json
// @Param   id path int true "ID кандидата"
// @Security BearerAuth
// @Success 200 {object} resume.Candidate
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidate/{id} [get]
func (h *CandidateHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный ID")
	}
	cand, err := h.uc.GetCandidate(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, cand)
}

// @Summary Частично обновить кандидата
// @Tags    Кандидаты
// @Accept  json
// @Produce json
// @Param   id path int true "ID кандидата"
// @Param   input body resume.CandidatePatch true "Изменяемые поля"
// @Security BearerAuth
// @Success 200 {object} resume.Candidate
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /candidate/{id} [put]
func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный ID")
	}
	var patch resume.CandidatePatch
	if err := c.BodyParser(&patch); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	cand, err := h.uc.UpdateCandidate(c.Context(), id, patch)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, cand)
}

// @Summary Удалить кандидата
// @Description Вместе с кандидатом каскадно удаляется связанное резюме.
// @Tags    Кандидаты
// @Produce json
// @Param   id path int true "ID кандидата"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidate/{id} [delete]
func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный ID")
	}
	if err := h.uc.DeleteCandidate(c.Context(), id); err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": fmt.Sprintf("Candidate with id %d deleted.", id),
	})
}
