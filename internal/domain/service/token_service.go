package service

import "time"

// ShareClaims is the information carried by a share-access token.
type ShareClaims struct {
	Slug  string // The catalog share slug the token grants access to.
	Email string // The verified visitor email.
}

// TokenService mints and validates share-access tokens handed out after a
// successful OTP verification.
type TokenService interface {
	// GenerateShareToken creates a signed token granting access to a shared catalog.
	GenerateShareToken(slug, email string) (string, error)

	// ValidateShareToken checks a token and returns its claims.
	ValidateShareToken(tokenString string) (*ShareClaims, error)

	// ShareTokenDuration returns the configured token lifetime.
	ShareTokenDuration() time.Duration
}
