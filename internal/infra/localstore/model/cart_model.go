package model

import (
	"time"

	"storefront/internal/domain/entity"
)

// CartEntryModel mirrors one element of the cart history document.
type CartEntryModel struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Image     string    `json:"img,omitempty"`
	Type      string    `json:"type,omitempty"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"when"`
	Paid      bool      `json:"paid"`
}

// FromCartEntryEntity maps a domain entity to its store document.
func FromCartEntryEntity(e *entity.CartEntry) *CartEntryModel {
	return &CartEntryModel{
		ID:        e.ID.String(),
		ProductID: e.ProductID.String(),
		Name:      e.Name,
		Price:     e.Price,
		Image:     e.Image,
		Type:      e.Type,
		Quantity:  e.Quantity,
		AddedAt:   e.AddedAt,
		Paid:      e.Paid,
	}
}

// ToEntity maps the store document back to a domain entity.
func (m *CartEntryModel) ToEntity() *entity.CartEntry {
	return &entity.CartEntry{
		ID:        parseID(m.ID),
		ProductID: parseID(m.ProductID),
		Name:      m.Name,
		Price:     m.Price,
		Image:     m.Image,
		Type:      m.Type,
		Quantity:  m.Quantity,
		AddedAt:   m.AddedAt,
		Paid:      m.Paid,
	}
}
