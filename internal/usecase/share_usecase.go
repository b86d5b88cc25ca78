package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RequestOTPInput asks for a one-time passcode for a shared catalog.
type RequestOTPInput struct {
	Slug  string
	Email string
}

// VerifyOTPInput submits a passcode for verification.
type VerifyOTPInput struct {
	Slug  string
	Email string
	Code  string
}

// --- Output DTOs ---

// RequestOTPOutput reports the issued challenge. Code is only populated in
// debug mode; outside debug the code is delivered out of band.
type RequestOTPOutput struct {
	Email     string
	ExpiresAt time.Time
	Code      string
}

// VerifyOTPOutput returns the access token minted after a successful verification.
type VerifyOTPOutput struct {
	Token       string
	ExpiresIn   time.Duration
	CatalogID   string
	CatalogName string
}

// SharedCatalogOutput is the gated catalog view returned to verified visitors.
type SharedCatalogOutput struct {
	Catalog    *entity.Catalog
	Items      []*CatalogItem
	Total      int
	Page       int
	TotalPages int
}

// ShareUsecase defines the interface for the email OTP gate in front of
// shared catalogs.
type ShareUsecase interface {
	// RequestOTP issues (or reissues) a challenge for the (slug, email) pair.
	RequestOTP(ctx context.Context, input *RequestOTPInput) (*RequestOTPOutput, error)

	// VerifyOTP checks a submitted code and mints a share-access token.
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) (*VerifyOTPOutput, error)

	// ViewSharedCatalog returns the resolved catalog view for a verified visitor.
	ViewSharedCatalog(ctx context.Context, slug string, page, pageSize int) (*SharedCatalogOutput, error)

	// TakeCatalogAccess consumes the one-shot handoff written at verification.
	TakeCatalogAccess(ctx context.Context) (*entity.CatalogAccess, error)
}
