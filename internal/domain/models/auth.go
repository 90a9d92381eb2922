package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the JWT claims this backend understands. Subject carries
// the user ID; Verified mirrors the account's email-verification state at
// issue time.
type TokenClaims struct {
	jwt.RegisteredClaims
	Email    string `json:"email,omitempty"`
	Verified bool   `json:"verified"`
}

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	UserID   string
	Verified bool
}
