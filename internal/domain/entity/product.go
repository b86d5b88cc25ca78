package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable item in the organization's master product list.
// Prices are whole currency amounts (XAF); PriceMin and PriceMax bound the
// negotiable range, with PriceMin acting as the default selling price.
type Product struct {
	ID          uuid.UUID // The unique identifier for the product.
	Name        string    // Display name.
	PriceMin    int64     // Lower price bound; the price used when adding to a cart.
	PriceMax    int64     // Upper price bound; display-only.
	Image       string    // Image reference (URL or data URI).
	Types       []string  // Selectable variants, e.g. "Bottle", "Can". Never empty.
	Category    string    // Product category label.
	Description string    // Optional free-form description.
	CreatedAt   time.Time // Timestamp of when the product was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
