// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the single profile record created by the setup flow.
// The store holds at most one of these.
type Organization struct {
	ID         uuid.UUID // The unique identifier for the organization.
	Name       string    // Display name, e.g. "My Restaurant".
	OwnerEmail string    // Contact email of the organization owner.
	Industry   string    // Free-form industry label chosen at setup.
	CreatedAt  time.Time // Timestamp of when the organization was created.
}
