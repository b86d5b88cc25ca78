package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddToCartInput defines an add-to-cart action. Price is the unit price
// snapshot at add time, usually the catalog-resolved lower bound.
type AddToCartInput struct {
	ProductID uuid.UUID
	Type      string
	Quantity  int
	Price     int64 // Optional; <= 0 falls back to the product's PriceMin.
}

// --- Output DTOs ---

// CartOutput returns the full cart with its running total.
type CartOutput struct {
	Entries      []*entity.CartEntry
	Total        int64
	TotalDisplay string // Total rendered for display, e.g. "2,000 XAF".
}

// CartUsecase defines the interface for cart operations. The cart is a single
// shared list, mirroring a per-browser session cart.
type CartUsecase interface {
	GetCart(ctx context.Context) (*CartOutput, error)
	AddToCart(ctx context.Context, input *AddToCartInput) (*entity.CartEntry, error)
	UpdateQuantity(ctx context.Context, entryID uuid.UUID, quantity int) (*entity.CartEntry, error)
	RemoveEntry(ctx context.Context, entryID uuid.UUID) error
	ClearCart(ctx context.Context) error
}
