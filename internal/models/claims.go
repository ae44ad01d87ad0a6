package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the JWT payload issued at login.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	TokenVersion int    `json:"token_version"`
}

// IsAdmin reports whether the token was issued to an admin.
func (c *UserClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
