package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string
	PriceMin    int64
	PriceMax    int64
	Image       string
	Types       []string
	Category    string
	Description string
}

// UpdateProductInput carries a full replacement of a product's editable fields.
type UpdateProductInput struct {
	Name        string
	PriceMin    int64
	PriceMax    int64
	Image       string
	Types       []string
	Category    string
	Description string
}

// ListProductsInput selects a page of the product list.
type ListProductsInput struct {
	Page     int // 1-based; values < 1 are treated as 1.
	PageSize int // Defaults to the standard page size when <= 0.
	Category string // Optional category filter; empty means all.
}

// --- Output DTOs ---

// ListProductsOutput returns one page of products, newest first.
type ListProductsOutput struct {
	Products   []*entity.Product
	Total      int
	Page       int
	TotalPages int
}

// ProductUsecase defines the interface for product list operations.
type ProductUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
