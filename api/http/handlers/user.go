package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hirebase/recruiting/api/http/presenter"
	"github.com/hirebase/recruiting/pkg/auth"
)

type UserHandler struct {
	uc auth.AuthUseCase
}

func NewUserHandler(uc auth.AuthUseCase) *UserHandler { return &UserHandler{uc: uc} }

// @Summary Профиль текущего пользователя
// @Tags    Пользователь
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.User
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /user/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	u, err := h.uc.Profile(c.Context(), uid)
	if err != nil {
		return authError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, u)
}

// @Summary Обновить профиль
// @Description Применяет только переданные поля.
// @Tags    Пользователь
// @Accept  json
// @Produce json
// @Param   input body auth.ProfilePatch true "Изменяемые поля"
// @Security BearerAuth
// @Success 200 {object} auth.User
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /user/me [put]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	var patch auth.ProfilePatch
	if err := c.BodyParser(&patch); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	u, err := h.uc.UpdateProfile(c.Context(), uid, patch)
	if err != nil {
		return authError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, u)
}
