package ports

import (
	"context"

	"github.com/clinichub/clinic-registry/internal/core/domain"
)

// AuditRepository persists the audit trail of record mutations.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}
