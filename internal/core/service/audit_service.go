package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinichub/clinic-registry/internal/api/metrics"
	"github.com/clinichub/clinic-registry/internal/core/domain"
	"github.com/clinichub/clinic-registry/internal/core/ports"
)

const defaultAuditListLimit = 50

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService persisting entries through repo.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single queued audit event.
func (s *auditService) Process(ctx context.Context, event ports.AuditEventInput) error {
	start := time.Now()

	entry := &domain.AuditEntry{
		RecordKind: event.RecordKind,
		RecordID:   event.RecordID,
		Action:     event.Action,
		Actor:      event.Actor,
		OccurredAt: event.OccurredAt,
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		metrics.AuditWriteDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("process audit event: %w", err)
	}

	metrics.AuditWriteDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	s.log.Debug().
		Str("kind", event.RecordKind).
		Int64("record_id", event.RecordID).
		Str("action", event.Action).
		Msg("audit entry persisted")

	return nil
}

// ListRecent returns up to limit entries, newest first. A non-positive limit
// falls back to defaultAuditListLimit.
func (s *auditService) ListRecent(ctx context.Context, limit int) ([]*ports.AuditEntryView, error) {
	if limit <= 0 {
		limit = defaultAuditListLimit
	}

	entries, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.AuditEntryView, len(entries))
	for i, e := range entries {
		views[i] = &ports.AuditEntryView{
			ID:         e.ID,
			RecordKind: e.RecordKind,
			RecordID:   e.RecordID,
			Action:     e.Action,
			Actor:      e.Actor,
			OccurredAt: e.OccurredAt,
		}
	}
	return views, nil
}
