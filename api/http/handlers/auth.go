package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hirebase/recruiting/api/http/presenter"
	"github.com/hirebase/recruiting/pkg/auth"
	"github.com/hirebase/recruiting/pkg/security/oauth"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	uc     auth.AuthUseCase
	google *oauth.GoogleClient
}

func NewAuthHandler(uc auth.AuthUseCase, google *oauth.GoogleClient) *AuthHandler {
	return &AuthHandler{uc: uc, google: google}
}

type registerInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailInput struct {
	Email string `json:"email"`
}

type tokenInput struct {
	Token string `json:"token"`
}

type resetInput struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string    `json:"access_token"`
	User  auth.User `json:"user"`
}

// @Summary Регистрация
// @Description Создаёт пользователя и отправляет письмо с токеном подтверждения почты.
// @Tags    Аутентификация
// @Accept  json
// @Produce json
// @Param   input body registerInput true "Учётные данные"
// @Success 201 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerInput
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	res, err := h.uc.Register(c.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		return authError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, authResponse{Token: res.Token, User: res.User})
}

// @Summary Вход по паролю
// @Tags    Аутентификация
// @Accept  json
// @Produce json
// @Param   input body loginInput true "Учётные данные"
// @Success 200 {object} authResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginInput
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	res, err := h.uc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return authError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, authResponse{Token: res.Token, User: res.User})
}

// @Summary Выход
// @Description Отзывает текущий токен: его jti попадает в чёрный список до истечения срока.
// @Tags    Аутентификация
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router  /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	jti, _ := c.Locals("jti").(string)
	exp, _ := c.Locals("tokenExp").(time.Time)
	if jti == "" {
		return presenter.Error(c, http.StatusUnauthorized, "токен не содержит jti")
	}
	if err := h.uc.Logout(c.Context(), jti, exp); err != nil {
		return authError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"success": "logged out"})
}

// @Summary Запросить повторное письмо подтверждения
// @Description Всегда отвечает 202: по ответу нельзя определить, зарегистрирована ли почта.
// @Tags    Аутентификация
// @Accept  json
// @Produce json
// @Param   input body emailInput true "Почта"
// @Success 202 {object} map[string]string
// @Router  /auth/request-verify-token [post]
func (h *AuthHandler) RequestVerifyToken(c *fiber.Ctx) error {
	var req emailInput
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if err := h.uc.RequestVerifyToken(c.Context(), req.Email); err != nil {
		return authError(c, err)
	}
	return presenter.JSON(c, http.StatusAccepted, fiber.Map{"status": "accepted"})
}

// @Summary Подтвердить почту
// @Tags    Аутентификация
// @Accept  json
// @Produce json
// @Param   input body tokenInput true "Одноразовый токен из письма"
// @Success 200 {object} auth.User
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/verify [post]
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var req tokenInput
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	u, err := h.uc.VerifyEmail(c.Context(), req.Token)
	if err != nil {
		return authError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, u)
}

// @Summary Запросить сброс пароля
// @Description Всегда отвечает 202: по ответу нельзя определить, зарегистрирована ли почта.
// @Tags    Аутентификация
// @Accept  json
// @Produce json
// @Param   input body emailInput true "Почта"
// @Success 202 {object} map[string]string
// @Router  /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req emailInput
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if err := h.uc.ForgotPassword(c.Context(), req.Email); err != nil {
		return authError(c, err)
	}
	return presenter.JSON(c, http.StatusAccepted, fiber.Map{"status": "accepted"})
}

// @Summary Сбросить пароль
// @Tags    Аутентификация
// @Accept  json
// @Produce json
// @Param   input body resetInput true "Одноразовый токен и новый пароль"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetInput
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if err := h.uc.ResetPassword(c.Context(), req.Token, req.Password); err != nil {
		return authError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"success": "password updated"})
}

// @Summary Начать вход через Google
// @Description Возвращает URL авторизации Google; state сохраняется в cookie и проверяется на callback.
// @Tags    Аутентификация
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /auth/google/authorize [get]
func (h *AuthHandler) GoogleAuthorize(c *fiber.Ctx) error {
	state := randomState()
	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(10 * time.Minute),
	})
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"authorization_url": h.google.AuthURL(state),
	})
}

// @Summary Callback входа через Google
// @Tags    Аутентификация
// @Produce json
// @Param   code query string true "Код авторизации от Google"
// @Param   state query string true "Анти-CSRF state"
// @Success 200 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" || state != c.Cookies(oauthStateCookie) {
		return presenter.Error(c, http.StatusBadRequest, "невалидный state")
	}
	c.Cookie(&fiber.Cookie{Name: oauthStateCookie, Value: "", Expires: time.Now().Add(-time.Hour)})

	code := c.Query("code")
	if code == "" {
		return presenter.Error(c, http.StatusBadRequest, "отсутствует code")
	}
	info, err := h.google.Exchange(c.Context(), code)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "не удалось обменять код авторизации")
	}
	res, err := h.uc.LoginWithOAuth(c.Context(), info)
	if err != nil {
		return authError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, authResponse{Token: res.Token, User: res.User})
}

func randomState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// authError переводит ошибки auth-слоя в HTTP-статусы.
func authError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrUserAlreadyExists):
		return presenter.Error(c, http.StatusConflict, "пользователь с такой почтой уже существует")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return presenter.Error(c, http.StatusUnauthorized, "неверная почта или пароль")
	case errors.Is(err, auth.ErrUserInactive):
		return presenter.Error(c, http.StatusForbidden, "учётная запись деактивирована")
	case errors.Is(err, auth.ErrInvalidToken):
		return presenter.Error(c, http.StatusBadRequest, "невалидный или истёкший токен")
	case errors.Is(err, auth.ErrInvalidInput):
		return presenter.Error(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, auth.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "не найдено")
	default:
		return presenter.Error(c, http.StatusInternalServerError, "внутренняя ошибка")
	}
}
