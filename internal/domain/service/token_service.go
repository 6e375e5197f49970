package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session payload. Subject carries the user id; the signer
// adds IssuedAt and ExpiresAt and nothing else.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens.
type TokenService interface {
	// Sign stamps iat/exp onto claims and returns the compact token.
	Sign(claims *Claims) (string, error)

	// Verify checks signature and expiry and returns the embedded claims.
	Verify(token string) (*Claims, error)
}
