package ports

import (
	"context"

	"github.com/clinichub/clinic-registry/internal/core/domain"
)

// ClinicRepository defines persistence operations for clinics.
type ClinicRepository interface {
	// Create persists a new clinic and returns it with the store-assigned id.
	Create(ctx context.Context, clinic *domain.Clinic) (*domain.Clinic, error)
	FindByID(ctx context.Context, id int64) (*domain.Clinic, error)
	// FindAll returns every clinic ordered by id.
	FindAll(ctx context.Context) ([]*domain.Clinic, error)
	// Update replaces the row identified by clinic.ID. Returns
	// domain.ErrClinicNotFound when no such row exists.
	Update(ctx context.Context, clinic *domain.Clinic) (*domain.Clinic, error)
	// Delete removes the row if present. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) error
}
