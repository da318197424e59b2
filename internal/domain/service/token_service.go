package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
// Tokens are issued by the identity provider; this service only verifies them.
type Claims struct {
	TenantID uuid.UUID
	Roles    []string
	jwt.RegisteredClaims
}

// TokenService validates access tokens.
type TokenService interface {
	// ValidateToken parses and verifies an access token string.
	ValidateToken(tokenString string) (*Claims, error)
}
