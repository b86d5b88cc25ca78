package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCustomerInput defines the data required to register a customer.
type CreateCustomerInput struct {
	Name     string
	Email    string
	Category string
}

// UpdateCustomerInput carries a full replacement of a customer's editable fields.
type UpdateCustomerInput struct {
	Name     string
	Email    string
	Category string
}

// GrantAccessInput assigns catalogs to a customer.
type GrantAccessInput struct {
	CustomerID uuid.UUID
	CatalogIDs []uuid.UUID
}

// CustomerUsecase defines the interface for customer management operations.
type CustomerUsecase interface {
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error

	// ListCategories returns the customer-category list, seeding defaults on first use.
	ListCategories(ctx context.Context) ([]string, error)

	// AddCategory appends a new customer category if it is not already present.
	AddCategory(ctx context.Context, name string) ([]string, error)

	// EligibleCatalogs lists the catalogs a customer may be granted, filtered
	// by the customer's category (plus the "Default" category).
	EligibleCatalogs(ctx context.Context, customerID uuid.UUID) ([]*entity.Catalog, error)

	// GrantAccess replaces the customer's granted catalog set. Catalogs outside
	// the customer's eligible set are rejected.
	GrantAccess(ctx context.Context, input *GrantAccessInput) (*entity.Customer, error)
}
