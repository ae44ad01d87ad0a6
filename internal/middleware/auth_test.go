package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"charity/internal/models"
	"charity/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-secret"

type mockVersions struct {
	mock.Mock
}

func (m *mockVersions) GetUserTokenVersion(ctx context.Context, userID uint) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func newApp(versions TokenVersionSource) *fiber.App {
	app := fiber.New()
	auth := NewAuthMiddleware(secret, versions)
	app.Get("/me", auth.Handler, func(c *fiber.Ctx) error {
		claims, err := utils.GetUserClaims(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"email": claims.Email})
	})
	app.Get("/admin", auth.Handler, AdminOnly, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func token(t *testing.T, role string, version int) string {
	t.Helper()
	tok, err := utils.GenerateToken(secret, time.Hour, &models.UserClaims{UserID: 5, Email: "u@x.com", Role: role, TokenVersion: version})
	require.NoError(t, err)
	return tok
}

func do(t *testing.T, app *fiber.App, path, authHeader string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	body := map[string]interface{}{}
	if resp.StatusCode != fiber.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&body)
	}
	return resp, body
}

func TestAuthMiddleware(t *testing.T) {
	versions := new(mockVersions)
	versions.On("GetUserTokenVersion", uint(5)).Return(2, nil)
	app := newApp(versions)

	resp, body := do(t, app, "/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "missing authorization header", body["error"])

	resp, _ = do(t, app, "/me", "Token abc")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, body = do(t, app, "/me", "Bearer garbage")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid token", body["error"])

	resp, body = do(t, app, "/me", "Bearer "+token(t, models.RoleUser, 1))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "session expired", body["error"])

	resp, body = do(t, app, "/me", "Bearer "+token(t, models.RoleUser, 2))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "u@x.com", body["email"])
}

func TestAuthMiddleware_UnknownUser(t *testing.T) {
	versions := new(mockVersions)
	versions.On("GetUserTokenVersion", uint(5)).Return(0, errors.New("user not found"))

	resp, _ := do(t, newApp(versions), "/me", "Bearer "+token(t, models.RoleUser, 1))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminOnly(t *testing.T) {
	versions := new(mockVersions)
	versions.On("GetUserTokenVersion", uint(5)).Return(1, nil)
	app := newApp(versions)

	resp, body := do(t, app, "/admin", "Bearer "+token(t, models.RoleUser, 1))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Insufficient permissions", body["error"])

	resp, _ = do(t, app, "/admin", "Bearer "+token(t, models.RoleAdmin, 1))
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestAdminOnly_WithoutAuthentication(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", AdminOnly, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, body := do(t, app, "/admin", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid claims", body["error"])
}
