package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hirebase/recruiting/api/http/presenter"
	"github.com/hirebase/recruiting/pkg/resume"
)

type ResumeHandler struct {
	uc resume.UseCase
}

func NewResumeHandler(uc resume.UseCase) *ResumeHandler { return &ResumeHandler{uc: uc} }

// @Summary Создать резюме
// @Description Создаёт резюме под вакансией вызывающего вместе с кандидатом, образованием и опытом работы. Всё сохраняется одной транзакцией.
// @Tags        Резюме
// @Accept      json
// @Produce     json
// @Param       input body resume.Resume true "Агрегат резюме; vacancy_id обязателен"
// @Security    BearerAuth
// @Success     201 {object} resume.Resume
// @Failure     403 {object} presenter.ErrorResponse
// @Failure     422 {object} presenter.ErrorResponse
// @Router      /resume [post]
func (h *ResumeHandler) Create(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	var req resume.Resume
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if req.VacancyID == 0 {
		return presenter.Error(c, http.StatusUnprocessableEntity, "vacancy_id обязателен")
	}
	created, err := h.uc.Create(c.Context(), uid, req.VacancyID, req)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// @Summary Получить резюме по ID
// @Description Возвращает резюме с кандидатом, образованием и опытом работы.
// @Tags    Резюме
// @Produce json
// @Param   id path int true "ID резюме"
// @Security BearerAuth
// @Success 200 {object} resume.Resume
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resume/{id} [get]
func (h *ResumeHandler) GetByID(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный ID")
	}
	r, err := h.uc.GetByID(c.Context(), uid, id)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, r)
}

// @Summary Список резюме вызывающего
// @Description Возвращает резюме по всем вакансиям, которыми владеет вызывающий.
// @Tags    Резюме
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resume.Resume
// @Router  /resume [get]
func (h *ResumeHandler) List(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	list, err := h.uc.ListByOwner(c.Context(), uid)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, list)
}

// @Summary Резюме вакансии на заданном этапе
// @Tags    Резюме
// @Produce json
// @Param   vacancyId path int true "ID вакансии"
// @Param   status query string true "Этап (in_work, screening, interview, rejected, offer)"
// @Security BearerAuth
// @Success 200 {array} resume.Resume
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /resume/vacancy/{vacancyId} [get]
func (h *ResumeHandler) ListByStage(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	vacancyID, err := parseID(c, "vacancyId")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный ID")
	}
	status := resume.Status(c.Query("status"))
	list, err := h.uc.ListByStage(c.Context(), uid, vacancyID, status)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, list)
}

// @Summary Частично обновить резюме
// @Description Применяет только переданные поля. Дочерние записи адресуются id; чужие id молча пропускаются.
// @Tags    Резюме
// @Accept  json
// @Produce json
// @Param   input body resume.Patch true "Изменяемые поля; id обязателен"
// @Security BearerAuth
// @Success 200 {object} resume.Resume
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /resume [put]
func (h *ResumeHandler) Update(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	var patch resume.Patch
	if err := c.BodyParser(&patch); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if patch.ID == 0 {
		return presenter.Error(c, http.StatusUnprocessableEntity, "id обязателен")
	}
	r, err := h.uc.Update(c.Context(), uid, patch)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, r)
}

// @Summary Удалить резюме
// @Description Удаляет резюме вместе с кандидатом, образованием и опытом работы.
// @Tags    Резюме
// @Produce json
// @Param   id path int true "ID резюме"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resume/{id} [delete]
func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
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
		"success": fmt.Sprintf("Resume with id %d deleted.", id),
	})
}

type labelDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// @Summary Справочники enum-значений
// @Description Возвращает значения и подписи статусов, степеней и прочих перечислений для форм.
// @Tags    Резюме
// @Produce json
// @Success 200 {object} map[string][]labelDTO
// @Router  /resume/labels [get]
func (h *ResumeHandler) Labels(c *fiber.Ctx) error {
	out := fiber.Map{}
	statuses := make([]labelDTO, 0, len(presenter.StatusLabels))
	for v, l := range presenter.StatusLabels {
		statuses = append(statuses, labelDTO{Value: string(v), Label: l})
	}
	interests := make([]labelDTO, 0, len(presenter.InterestLabels))
	for v, l := range presenter.InterestLabels {
		interests = append(interests, labelDTO{Value: string(v), Label: l})
	}
	genders := make([]labelDTO, 0, len(presenter.GenderLabels))
	for v, l := range presenter.GenderLabels {
		genders = append(genders, labelDTO{Value: string(v), Label: l})
	}
	degrees := make([]labelDTO, 0, len(presenter.DegreeLabels))
	for v, l := range presenter.DegreeLabels {
		degrees = append(degrees, labelDTO{Value: string(v), Label: l})
	}
	out["resume_status"] = statuses
	out["interest_in_job"] = interests
	out["gender"] = genders
	out["degree"] = degrees
	return presenter.JSON(c, http.StatusOK, out)
}
