package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinichub/clinic-registry/internal/core/domain"
	"github.com/clinichub/clinic-registry/internal/core/ports"
)

type clinicService struct {
	repo  ports.ClinicRepository
	audit ports.AuditTrail
	log   zerolog.Logger
}

// NewClinicService returns a ClinicService backed by repo. Every mutation is
// recorded on the audit trail.
func NewClinicService(repo ports.ClinicRepository, audit ports.AuditTrail, log zerolog.Logger) ports.ClinicService {
	return &clinicService{repo: repo, audit: audit, log: log}
}

// Save creates the clinic when input.ID is zero, otherwise replaces the
// existing record. Replacing an absent id fails with ErrClinicNotFound.
func (s *clinicService) Save(ctx context.Context, input ports.ClinicInput) (*domain.Clinic, error) {
	clinic := &domain.Clinic{ID: input.ID, Name: input.Name}

	if input.ID == 0 {
		created, err := s.repo.Create(ctx, clinic)
		if err != nil {
			return nil, err
		}
		s.log.Info().Int64("clinic_id", created.ID).Msg("clinic created")
		s.recordAudit(ctx, created.ID, domain.AuditCreated)
		return created, nil
	}

	updated, err := s.repo.Update(ctx, clinic)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("clinic_id", updated.ID).Msg("clinic updated")
	s.recordAudit(ctx, updated.ID, domain.AuditUpdated)
	return updated, nil
}

func (s *clinicService) FindAll(ctx context.Context) ([]*domain.Clinic, error) {
	return s.repo.FindAll(ctx)
}

func (s *clinicService) FindOne(ctx context.Context, id int64) (*domain.Clinic, error) {
	return s.repo.FindByID(ctx, id)
}

// Delete removes the clinic. Deleting an id that does not exist is a no-op,
// so the call is idempotent.
func (s *clinicService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("clinic_id", id).Msg("clinic deleted")
	s.recordAudit(ctx, id, domain.AuditDeleted)
	return nil
}

func (s *clinicService) recordAudit(ctx context.Context, id int64, action string) {
	s.audit.Record(ports.AuditEventInput{
		RecordKind: domain.KindClinic,
		RecordID:   id,
		Action:     action,
		Actor:      ports.ActorFrom(ctx),
		OccurredAt: time.Now().UTC(),
	})
}
