package jwt

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hirebase/recruiting/pkg/auth"
)

const testSecret = "test-secret"

type memBlacklist map[string]bool

func (m memBlacklist) JTIBlacklisted(_ context.Context, jti string) (bool, error) {
	return m[jti], nil
}

func generate(t *testing.T, user auth.User, ttl time.Duration) string {
	t.Helper()
	token, err := NewGenerator(testSecret, "recruiting-service", ttl).Generate(context.Background(), user)
	require.NoError(t, err)
	return token
}

func protectedApp(blacklist Blacklist) *fiber.App {
	app := fiber.New()
	app.Get("/me", NewAuthMiddleware(testSecret, "recruiting-service", blacklist), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("userId"),
			"jti":     c.Locals("jti"),
		})
	})
	app.Get("/admin", NewAuthMiddleware(testSecret, "recruiting-service", blacklist), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestGenerate_ClaimsRoundTrip(t *testing.T) {
	user := auth.User{ID: uuid.New(), IsSuperuser: true}
	tokenStr := generate(t, user, time.Hour)

	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(*jwtlib.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(*Claims)
	require.Equal(t, user.ID.String(), claims.Subject)
	require.Equal(t, "recruiting-service", claims.Issuer)
	require.NotEmpty(t, claims.ID)
	require.True(t, claims.IsAdmin)
}

func TestMiddleware_AcceptsBearerAndBare(t *testing.T) {
	app := protectedApp(nil)
	tokenStr := generate(t, auth.User{ID: uuid.New()}, time.Hour)

	for _, header := range []string{"Bearer " + tokenStr, tokenStr} {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}

func TestMiddleware_RejectsMissingAndExpired(t *testing.T) {
	app := protectedApp(nil)

	req := httptest.NewRequest("GET", "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	expired := generate(t, auth.User{ID: uuid.New()}, -time.Minute)
	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_RejectsWrongIssuer(t *testing.T) {
	app := protectedApp(nil)

	token, err := NewGenerator(testSecret, "another-issuer", time.Hour).Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_RejectsBlacklistedJTI(t *testing.T) {
	tokenStr := generate(t, auth.User{ID: uuid.New()}, time.Hour)

	parsed, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(*jwtlib.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	jti := parsed.Claims.(*Claims).ID

	app := protectedApp(memBlacklist{jti: true})
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	app := protectedApp(nil)

	plain := generate(t, auth.User{ID: uuid.New()}, time.Hour)
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+plain)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	admin := generate(t, auth.User{ID: uuid.New(), IsSuperuser: true}, time.Hour)
	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
