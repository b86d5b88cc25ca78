package model

import (
	"time"

	"storefront/internal/domain/entity"
)

// OTPChallengeModel mirrors a pending code document keyed by (slug, email).
type OTPChallengeModel struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires"`
}

// FromOTPChallengeEntity maps a domain entity to its store document.
func FromOTPChallengeEntity(c *entity.OTPChallenge) *OTPChallengeModel {
	return &OTPChallengeModel{Code: c.Code, ExpiresAt: c.ExpiresAt}
}

// ToEntity maps the store document back to a domain entity.
func (m *OTPChallengeModel) ToEntity() *entity.OTPChallenge {
	return &entity.OTPChallenge{Code: m.Code, ExpiresAt: m.ExpiresAt}
}

// ShareVerificationModel mirrors a verification marker document.
type ShareVerificationModel struct {
	Email      string    `json:"email"`
	VerifiedAt time.Time `json:"when"`
}

// FromShareVerificationEntity maps a domain entity to its store document.
func FromShareVerificationEntity(v *entity.ShareVerification) *ShareVerificationModel {
	return &ShareVerificationModel{Email: v.Email, VerifiedAt: v.VerifiedAt}
}

// ToEntity maps the store document back to a domain entity.
func (m *ShareVerificationModel) ToEntity() *entity.ShareVerification {
	return &entity.ShareVerification{Email: m.Email, VerifiedAt: m.VerifiedAt}
}

// CatalogAccessModel mirrors the one-shot catalog-access handoff document.
type CatalogAccessModel struct {
	CatalogID   string `json:"catalogId"`
	CatalogName string `json:"catalogName"`
	Category    string `json:"category,omitempty"`
	Email       string `json:"email"`
}

// FromCatalogAccessEntity maps a domain entity to its store document.
func FromCatalogAccessEntity(a *entity.CatalogAccess) *CatalogAccessModel {
	return &CatalogAccessModel{
		CatalogID:   a.CatalogID.String(),
		CatalogName: a.CatalogName,
		Category:    a.Category,
		Email:       a.Email,
	}
}

// ToEntity maps the store document back to a domain entity.
func (m *CatalogAccessModel) ToEntity() *entity.CatalogAccess {
	return &entity.CatalogAccess{
		CatalogID:   parseID(m.CatalogID),
		CatalogName: m.CatalogName,
		Category:    m.Category,
		Email:       m.Email,
	}
}
