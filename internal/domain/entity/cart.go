package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartEntry is a single add-to-cart action. Entries are identified by a
// generated id rather than their AddedAt timestamp, so rapid successive
// additions of the same product never collide.
type CartEntry struct {
	ID        uuid.UUID // Stable identity of this entry.
	ProductID uuid.UUID // The product this entry was created from.
	Name      string    // Product name snapshot at add time.
	Price     int64     // Unit price snapshot at add time.
	Image     string    // Image reference snapshot.
	Type      string    // Selected product variant.
	Quantity  int       // Number of units; always >= 1.
	AddedAt   time.Time // When the entry was added to the cart.
	Paid      bool      // Whether this entry has been paid for.
}

// Subtotal is this entry's contribution to the cart total.
func (e *CartEntry) Subtotal() int64 {
	return e.Price * int64(e.Quantity)
}

// CartTotal sums the subtotals of all entries, paid or not.
func CartTotal(entries []*CartEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Subtotal()
	}

	return total
}
