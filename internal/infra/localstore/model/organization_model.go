// Package model defines the JSON documents persisted in the local store and
// their conversions to and from domain entities. Field names follow the
// camelCase shapes the store has always held.
package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrganizationModel mirrors the organization profile document.
type OrganizationModel struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OwnerEmail string    `json:"ownerEmail"`
	Industry   string    `json:"industry"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FromOrganizationEntity maps a domain entity to its store document.
func FromOrganizationEntity(org *entity.Organization) *OrganizationModel {
	return &OrganizationModel{
		ID:         org.ID.String(),
		Name:       org.Name,
		OwnerEmail: org.OwnerEmail,
		Industry:   org.Industry,
		CreatedAt:  org.CreatedAt,
	}
}

// ToEntity maps the store document back to a domain entity.
func (m *OrganizationModel) ToEntity() *entity.Organization {
	return &entity.Organization{
		ID:         parseID(m.ID),
		Name:       m.Name,
		OwnerEmail: m.OwnerEmail,
		Industry:   m.Industry,
		CreatedAt:  m.CreatedAt,
	}
}

// parseID tolerates malformed ids the way the original store did: a bad id
// resolves to the zero UUID instead of failing the whole document.
func parseID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}

	return id
}
