package auth

import "scribe/internal/domain/models"

// TokenVerifier validates bearer tokens and resolves the caller identity.
// Two implementations exist: the local HS256 verifier used when this
// service issues its own tokens, and a JWKS-backed verifier for
// deployments that delegate identity to an external provider.
type TokenVerifier interface {
	// VerifyToken validates a token string and returns the caller
	// identity. Returns an error if the token is missing required
	// claims, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.Identity, error)

	// Close releases any resources held by the verifier (e.g. HTTP
	// connections for JWKS refresh).
	Close() error
}
