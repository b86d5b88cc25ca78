package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PriceOverrideInput is a per-product price replacement inside a catalog.
type PriceOverrideInput struct {
	ProductID uuid.UUID
	PriceMin  int64
	PriceMax  int64
}

// CreateCatalogInput defines the data required to create a catalog.
type CreateCatalogInput struct {
	Name              string
	Category          string // Defaults to "Default" when empty.
	Prices            []PriceOverrideInput
	AllowedCategories []string
}

// UpdateCatalogInput carries a full replacement of a catalog's editable fields.
type UpdateCatalogInput struct {
	Name              string
	Category          string
	Prices            []PriceOverrideInput
	AllowedCategories []string
}

// --- Output DTOs ---

// CatalogItem is a product resolved through a catalog's price overrides.
type CatalogItem struct {
	Product      *entity.Product
	PriceMin     int64  // Effective lower price in this catalog.
	PriceMax     int64  // Effective upper price in this catalog.
	PriceDisplay string // Price range rendered for display, e.g. "500 XAF - 700 XAF".
}

// CatalogViewOutput is one page of a catalog's resolved product list.
type CatalogViewOutput struct {
	Catalog    *entity.Catalog
	Items      []*CatalogItem
	Total      int
	Page       int
	TotalPages int
}

// ShareLinkOutput describes a freshly created or existing share link.
type ShareLinkOutput struct {
	Slug   string
	URL    string
	QRCode []byte // PNG image of the URL.
}

// CatalogUsecase defines the interface for catalog operations.
type CatalogUsecase interface {
	ListCatalogs(ctx context.Context) ([]*entity.Catalog, error)
	GetCatalog(ctx context.Context, id uuid.UUID) (*entity.Catalog, error)
	CreateCatalog(ctx context.Context, input *CreateCatalogInput) (*entity.Catalog, error)
	UpdateCatalog(ctx context.Context, id uuid.UUID, input *UpdateCatalogInput) (*entity.Catalog, error)
	DeleteCatalog(ctx context.Context, id uuid.UUID) error

	// ViewCatalog resolves the catalog's products through its price overrides.
	ViewCatalog(ctx context.Context, id uuid.UUID, page, pageSize int) (*CatalogViewOutput, error)

	// CreateShareLink assigns the catalog a share slug (if it has none) and
	// returns the share URL with its QR code.
	CreateShareLink(ctx context.Context, id uuid.UUID) (*ShareLinkOutput, error)
}
