package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is an external buyer who may be granted access to catalogs.
// CatalogAccess holds granted catalog ids; no check is made that they still
// exist, a dangling grant simply resolves to nothing at view time.
type Customer struct {
	ID            uuid.UUID   // The unique identifier for the customer.
	Name          string      // Display name.
	Email         string      // Optional contact email.
	Category      string      // Optional customer category, e.g. "Wholesaler".
	CatalogAccess []uuid.UUID // Catalog ids this customer has been granted.
	CreatedAt     time.Time   // Timestamp of when the customer was created.
}

// DefaultCustomerCategories seeds the customer-category list on first use.
func DefaultCustomerCategories() []string {
	return []string{"Wholesaler", "Retailer"}
}
