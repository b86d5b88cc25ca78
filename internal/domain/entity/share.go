package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPChallenge is a pending one-time passcode for a (slug, email) pair.
// Issuing a new challenge for the same pair overwrites the old one. A
// challenge is not deleted after a successful verification; it stays valid
// until ExpiresAt, which matches the behavior of the original share flow.
type OTPChallenge struct {
	Code      string    // 6-digit decimal code.
	ExpiresAt time.Time // Moment after which Verify rejects the code.
}

// Expired reports whether the challenge is past its expiry at the given time.
func (c *OTPChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// ShareVerification marks a successful OTP verification for a (slug, email)
// pair. It is informational; access tokens are minted separately.
type ShareVerification struct {
	Email      string    // The verified email address.
	VerifiedAt time.Time // When verification succeeded.
}

// CatalogAccess is the one-shot handoff record written on successful
// verification and consumed (then deleted) by the catalog view on load.
type CatalogAccess struct {
	CatalogID   uuid.UUID // The shared catalog.
	CatalogName string    // Name snapshot for display.
	Category    string    // Catalog category snapshot.
	Email       string    // The verified visitor email.
}
