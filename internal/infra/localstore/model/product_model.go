package model

import (
	"time"

	"storefront/internal/domain/entity"
)

// ProductModel mirrors one element of the product list document.
type ProductModel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PriceMin    int64     `json:"priceMin"`
	PriceMax    int64     `json:"priceMax"`
	Image       string    `json:"img,omitempty"`
	Types       []string  `json:"types"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromProductEntity maps a domain entity to its store document.
func FromProductEntity(p *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          p.ID.String(),
		Name:        p.Name,
		PriceMin:    p.PriceMin,
		PriceMax:    p.PriceMax,
		Image:       p.Image,
		Types:       p.Types,
		Category:    p.Category,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToEntity maps the store document back to a domain entity.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:          parseID(m.ID),
		Name:        m.Name,
		PriceMin:    m.PriceMin,
		PriceMax:    m.PriceMax,
		Image:       m.Image,
		Types:       m.Types,
		Category:    m.Category,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
