package utils

import (
	"errors"

	"charity/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	claimsLocal = "claims"
	userIDLocal = "userID"
)

var (
	ErrClaimsMissing = errors.New("claims not found in context")
	ErrClaimsInvalid = errors.New("invalid claims type")
)

// SetUserClaims stores the authenticated user's claims on the request.
func SetUserClaims(c *fiber.Ctx, claims *models.UserClaims) {
	c.Locals(claimsLocal, claims)
	c.Locals(userIDLocal, claims.UserID)
}

// GetUserClaims returns the claims stored by SetUserClaims.
func GetUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	v := c.Locals(claimsLocal)
	if v == nil {
		return nil, ErrClaimsMissing
	}
	claims, ok := v.(*models.UserClaims)
	if !ok || claims == nil {
		return nil, ErrClaimsInvalid
	}
	return claims, nil
}
