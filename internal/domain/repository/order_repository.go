package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderRepository persists the append-only order list.
type OrderRepository interface {
	// List retrieves every order in insertion order.
	List(ctx context.Context) ([]*entity.Order, error)

	// Append adds a write-once order record.
	Append(ctx context.Context, order *entity.Order) error
}
