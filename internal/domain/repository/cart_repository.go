package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartRepository persists the cart history as a single ordered list.
// The original flow always rewrites the whole list on change, and there is
// exactly one mutator, so the interface mirrors that read-modify-write shape.
type CartRepository interface {
	// List retrieves all cart entries, newest first.
	List(ctx context.Context) ([]*entity.CartEntry, error)

	// Save replaces the whole cart history.
	Save(ctx context.Context, entries []*entity.CartEntry) error

	// Clear removes every entry.
	Clear(ctx context.Context) error
}
