package ports

import (
	"context"

	"github.com/clinichub/clinic-registry/internal/core/domain"
)

// ClinicInput carries the external representation of a clinic into the
// service layer. ID zero means "not supplied" (create); non-zero means
// replace-by-id.
type ClinicInput struct {
	ID   int64
	Name string
}

// ClinicService defines use-case operations for clinics.
type ClinicService interface {
	// Save creates the clinic when input.ID is zero and replaces the
	// existing record otherwise.
	Save(ctx context.Context, input ClinicInput) (*domain.Clinic, error)
	FindAll(ctx context.Context) ([]*domain.Clinic, error)
	FindOne(ctx context.Context, id int64) (*domain.Clinic, error)
	Delete(ctx context.Context, id int64) error
}
