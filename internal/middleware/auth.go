// Package middleware provides HTTP middleware components for the application.
// It includes authentication and authorization middleware for fiber routes.
package middleware

import (
	"context"
	"log"
	"strings"

	"charity/internal/utils"
	"charity/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// TokenVersionSource reports the current token version of a user. Tokens
// carrying an older version were revoked by a logout.
type TokenVersionSource interface {
	GetUserTokenVersion(ctx context.Context, userID uint) (int, error)
}

// AuthMiddleware handles JWT token validation and user authentication.
// It extracts the JWT token from the Authorization header, validates it,
// and adds the user claims to the request context.
type AuthMiddleware struct {
	secret   string
	versions TokenVersionSource
}

func NewAuthMiddleware(secret string, versions TokenVersionSource) *AuthMiddleware {
	return &AuthMiddleware{
		secret:   secret,
		versions: versions,
	}
}

// Handler validates JWT tokens and adds claims to the request context.
// It checks for:
// - Presence of Authorization header with Bearer token
// - Valid JWT signature and expiry
// - Token version matches current user version
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return response.Error(c, fiber.StatusUnauthorized, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return response.Error(c, fiber.StatusUnauthorized, "invalid authorization format")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	_, claims, err := utils.ParseToken(m.secret, tokenString)
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return response.Error(c, fiber.StatusUnauthorized, "invalid token")
	}

	currentVersion, err := m.versions.GetUserTokenVersion(c.UserContext(), claims.UserID)
	if err != nil {
		log.Printf("Error getting token version for user %d: %v", claims.UserID, err)
		return response.Error(c, fiber.StatusUnauthorized, "invalid token")
	}
	if claims.TokenVersion != currentVersion {
		log.Printf("Token version mismatch for user %d. Token: %d, DB: %d",
			claims.UserID, claims.TokenVersion, currentVersion)
		return response.Error(c, fiber.StatusUnauthorized, "session expired")
	}

	utils.SetUserClaims(c, claims)

	return c.Next()
}

// AdminOnly verifies that the request has valid admin claims. It must run
// after AuthMiddleware.Handler.
func AdminOnly(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		log.Printf("Admin check failed: %v", err)
		return response.Error(c, fiber.StatusUnauthorized, "Invalid claims")
	}
	if !claims.IsAdmin() {
		log.Printf("Access denied: user %d role is %s, not admin", claims.UserID, claims.Role)
		return response.Error(c, fiber.StatusForbidden, "Insufficient permissions")
	}
	return c.Next()
}
