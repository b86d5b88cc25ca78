package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerModel mirrors one element of the customer list document.
type CustomerModel struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Category      string    `json:"category,omitempty"`
	CatalogAccess []string  `json:"catalogAccess"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FromCustomerEntity maps a domain entity to its store document.
func FromCustomerEntity(c *entity.Customer) *CustomerModel {
	access := make([]string, 0, len(c.CatalogAccess))
	for _, id := range c.CatalogAccess {
		access = append(access, id.String())
	}

	return &CustomerModel{
		ID:            c.ID.String(),
		Name:          c.Name,
		Email:         c.Email,
		Category:      c.Category,
		CatalogAccess: access,
		CreatedAt:     c.CreatedAt,
	}
}

// ToEntity maps the store document back to a domain entity.
func (m *CustomerModel) ToEntity() *entity.Customer {
	access := make([]uuid.UUID, 0, len(m.CatalogAccess))
	for _, raw := range m.CatalogAccess {
		access = append(access, parseID(raw))
	}

	return &entity.Customer{
		ID:            parseID(m.ID),
		Name:          m.Name,
		Email:         m.Email,
		Category:      m.Category,
		CatalogAccess: access,
		CreatedAt:     m.CreatedAt,
	}
}
