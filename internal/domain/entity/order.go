package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
)

// Order is a write-once record appended to the order list at checkout.
// Items is a snapshot of the cart entries at the moment of purchase.
type Order struct {
	ID            uuid.UUID   // The unique identifier for the order.
	CustomerName  string      // Required buyer name.
	CustomerPhone string      // Optional buyer phone.
	CustomerEmail string      // Optional buyer email.
	Items         []CartEntry // Snapshot of the purchased cart entries, all marked paid.
	TotalAmount   int64       // Sum of item subtotals at purchase time.
	PaymentMethod string      // One of the PaymentMethod constants.
	Notes         string      // Optional free-form instructions.
	CreatedAt     time.Time   // Timestamp of when the order was placed.
}
