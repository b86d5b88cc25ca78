package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// Domain-specific errors for the share/OTP store.
var (
	// ErrChallengeNotFound is returned when no OTP has been issued for a (slug, email) pair.
	ErrChallengeNotFound = errors.New("otp challenge not found")

	// ErrAccessNotFound is returned when no catalog-access handoff is pending.
	ErrAccessNotFound = errors.New("catalog access handoff not found")
)

// ShareRepository persists the OTP gate state: pending challenges keyed by
// (slug, email), verification markers, and the one-shot catalog-access handoff.
type ShareRepository interface {
	// SaveChallenge stores a challenge for the pair, overwriting any prior one.
	SaveChallenge(ctx context.Context, slug, email string, challenge *entity.OTPChallenge) error

	// FindChallenge retrieves the pending challenge for the pair.
	FindChallenge(ctx context.Context, slug, email string) (*entity.OTPChallenge, error)

	// SaveVerification stores the verification marker for the pair. The
	// marker is an audit record, nothing reads it back.
	SaveVerification(ctx context.Context, slug, email string, verification *entity.ShareVerification) error

	// SaveAccess stores the one-shot catalog-access handoff record.
	SaveAccess(ctx context.Context, access *entity.CatalogAccess) error

	// TakeAccess retrieves and deletes the pending handoff record.
	TakeAccess(ctx context.Context) (*entity.CatalogAccess, error)
}
