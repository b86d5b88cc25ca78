// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SetupOrganizationInput defines the data collected by the first-run setup flow.
type SetupOrganizationInput struct {
	Name       string
	OwnerEmail string
	Industry   string
}

// OrganizationUsecase defines the interface for organization profile operations.
type OrganizationUsecase interface {
	// Setup creates the organization profile. Running it again overwrites the profile.
	Setup(ctx context.Context, input *SetupOrganizationInput) (*entity.Organization, error)

	// Get returns the organization profile, or ErrOrganizationNotFound before setup.
	Get(ctx context.Context) (*entity.Organization, error)
}
