package entity

import (
	"time"

	"github.com/google/uuid"
)

// PriceOverride is a per-catalog replacement for a product's price range.
type PriceOverride struct {
	PriceMin int64
	PriceMax int64
}

// Catalog is a named view of the product list with optional per-product price
// overrides and an access category. Overrides are sparse: products without an
// entry in Prices fall back to their own default prices.
type Catalog struct {
	ID                uuid.UUID                   // The unique identifier for the catalog.
	Name              string                      // Display name.
	Category          string                      // Customer category this catalog targets, or "Default".
	Prices            map[uuid.UUID]PriceOverride // Sparse per-product price overrides.
	AllowedCategories []string                    // Optional product-category filter for the catalog view.
	Slug              string                      // URL-safe share identifier; empty until a share link is created.
	CreatedAt         time.Time                   // Timestamp of when the catalog was created.
}

// PriceFor resolves the effective price range for a product in this catalog,
// falling back to the product's own prices when no override exists.
func (c *Catalog) PriceFor(p *Product) (priceMin, priceMax int64) {
	if override, ok := c.Prices[p.ID]; ok {
		return override.PriceMin, override.PriceMax
	}

	return p.PriceMin, p.PriceMax
}
