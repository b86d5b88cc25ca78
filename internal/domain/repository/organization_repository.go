// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrganizationNotFound is returned before the setup flow has run.
var ErrOrganizationNotFound = errors.New("organization not found")

// OrganizationRepository persists the single organization profile.
type OrganizationRepository interface {
	// Get retrieves the organization profile.
	Get(ctx context.Context) (*entity.Organization, error)

	// Save creates or replaces the organization profile.
	Save(ctx context.Context, org *entity.Organization) error
}
