package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// PriceOverrideModel mirrors one entry of a catalog's sparse price map.
type PriceOverrideModel struct {
	PriceMin int64 `json:"priceMin"`
	PriceMax int64 `json:"priceMax"`
}

// CatalogModel mirrors one element of the catalog list document. Prices is
// keyed by product id; products absent from it fall back to their defaults.
type CatalogModel struct {
	ID                string                        `json:"id"`
	Name              string                        `json:"name"`
	Category          string                        `json:"category"`
	Prices            map[string]PriceOverrideModel `json:"prices,omitempty"`
	AllowedCategories []string                      `json:"allowedCategories,omitempty"`
	Slug              string                        `json:"slug,omitempty"`
	CreatedAt         time.Time                     `json:"createdAt"`
}

// FromCatalogEntity maps a domain entity to its store document.
func FromCatalogEntity(c *entity.Catalog) *CatalogModel {
	var prices map[string]PriceOverrideModel
	if len(c.Prices) > 0 {
		prices = make(map[string]PriceOverrideModel, len(c.Prices))
		for productID, override := range c.Prices {
			prices[productID.String()] = PriceOverrideModel{
				PriceMin: override.PriceMin,
				PriceMax: override.PriceMax,
			}
		}
	}

	return &CatalogModel{
		ID:                c.ID.String(),
		Name:              c.Name,
		Category:          c.Category,
		Prices:            prices,
		AllowedCategories: c.AllowedCategories,
		Slug:              c.Slug,
		CreatedAt:         c.CreatedAt,
	}
}

// ToEntity maps the store document back to a domain entity.
func (m *CatalogModel) ToEntity() *entity.Catalog {
	var prices map[uuid.UUID]entity.PriceOverride
	if len(m.Prices) > 0 {
		prices = make(map[uuid.UUID]entity.PriceOverride, len(m.Prices))
		for rawID, override := range m.Prices {
			prices[parseID(rawID)] = entity.PriceOverride{
				PriceMin: override.PriceMin,
				PriceMax: override.PriceMax,
			}
		}
	}

	return &entity.Catalog{
		ID:                parseID(m.ID),
		Name:              m.Name,
		Category:          m.Category,
		Prices:            prices,
		AllowedCategories: m.AllowedCategories,
		Slug:              m.Slug,
		CreatedAt:         m.CreatedAt,
	}
}
