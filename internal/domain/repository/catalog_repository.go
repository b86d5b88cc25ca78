package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrCatalogNotFound is returned when a catalog id or slug resolves to nothing.
	ErrCatalogNotFound = errors.New("catalog not found")
)

// CatalogRepository defines the standard operations for catalog persistence.
type CatalogRepository interface {
	// List retrieves every catalog, newest first.
	List(ctx context.Context) ([]*entity.Catalog, error)

	// FindByID retrieves a single catalog by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Catalog, error)

	// FindBySlug retrieves the catalog carrying the given share slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Catalog, error)

	// Create persists a new catalog.
	Create(ctx context.Context, catalog *entity.Catalog) error

	// Update modifies an existing catalog in place.
	Update(ctx context.Context, catalog *entity.Catalog) error

	// Delete removes a catalog by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
