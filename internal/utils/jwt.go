package utils

import (
	"errors"
	"strconv"
	"time"

	"charity/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "charity-api"

var ErrJWTSecretMissing = errors.New("JWT secret not configured")

// GenerateToken signs an access token for the given user claims that expires after ttl.
func GenerateToken(secret string, ttl time.Duration, claims *models.UserClaims) (string, error) {
	if secret == "" {
		return "", ErrJWTSecretMissing
	}

	now := time.Now()
	accessClaims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatUint(uint64(claims.UserID), 10),
		},
		UserID:       claims.UserID,
		Email:        claims.Email,
		Role:         claims.Role,
		TokenVersion: claims.TokenVersion,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(secret))
}

// ParseToken parses and validates a JWT token string.
// It returns the token if valid, or an error if something is wrong.
func ParseToken(secret, tokenStr string) (*jwt.Token, *models.UserClaims, error) {
	if secret == "" {
		return nil, nil, ErrJWTSecretMissing
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, nil, errors.New("invalid token claims")
	}

	return token, claims, nil
}
