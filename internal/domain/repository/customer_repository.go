package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer persistence,
// including the stored customer-category list.
type CustomerRepository interface {
	// List retrieves every customer, newest first.
	List(ctx context.Context) ([]*entity.Customer, error)

	// FindByID retrieves a single customer by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// Create persists a new customer.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update modifies an existing customer in place.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete removes a customer by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListCategories retrieves the customer-category list, seeding the
	// defaults when none has been stored yet.
	ListCategories(ctx context.Context) ([]string, error)

	// SaveCategories replaces the customer-category list.
	SaveCategories(ctx context.Context, categories []string) error
}
