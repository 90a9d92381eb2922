package models

import (
	"time"
)

// User is an account in the identity store. The password hash never leaves
// the server; json tags omit it defensively.
type User struct {
	ID                string    `json:"id" db:"id"`
	Email             string    `json:"email" db:"email"`
	PasswordHash      string    `json:"-" db:"password_hash"`
	IsVerified        bool      `json:"is_verified" db:"is_verified"`
	VerificationToken string    `json:"-" db:"verification_token"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}
