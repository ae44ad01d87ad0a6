package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"charity/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserClaimsRoundTrip(t *testing.T) {
	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		SetUserClaims(c, &models.UserClaims{UserID: 9, Email: "a@x.com"})
		claims, err := GetUserClaims(c)
		require.NoError(t, err)
		assert.Equal(t, uint(9), claims.UserID)
		assert.Equal(t, uint(9), c.Locals("userID"))
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		_, err := GetUserClaims(c)
		assert.ErrorIs(t, err, ErrClaimsMissing)
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/wrong-type", func(c *fiber.Ctx) error {
		c.Locals("claims", "not claims")
		_, err := GetUserClaims(c)
		assert.ErrorIs(t, err, ErrClaimsInvalid)
		return c.SendStatus(fiber.StatusNoContent)
	})

	for _, path := range []string{"/set", "/missing", "/wrong-type"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode, path)
	}
}
