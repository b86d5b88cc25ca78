package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CheckoutInput collects the buyer details confirmed at checkout.
type CheckoutInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	PaymentMethod string // One of the entity.PaymentMethod constants.
	Notes         string
}

// CheckoutUsecase defines the interface for payment and order operations.
// The payment processor is simulated with fixed settlement delays.
type CheckoutUsecase interface {
	// Checkout settles the whole cart: every entry is marked paid, an order
	// snapshot is appended, and the cart is cleared.
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)

	// PayEntry settles a single cart entry in place without creating an order.
	PayEntry(ctx context.Context, entryID uuid.UUID) (*entity.CartEntry, error)

	// ListOrders returns all placed orders, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)
}
