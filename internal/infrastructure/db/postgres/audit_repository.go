package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clinichub/clinic-registry/internal/core/domain"
)

// AuditRepository is the PostgreSQL implementation of ports.AuditRepository.
type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	const query = `INSERT INTO audit_entries (record_kind, record_id, action, actor, occurred_at)
	               VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		entry.RecordKind, entry.RecordID, entry.Action, entry.Actor, entry.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	const query = `SELECT id, record_kind, record_id, action, actor, occurred_at
	               FROM audit_entries ORDER BY id DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.AuditEntry
	for rows.Next() {
		entry := &domain.AuditEntry{}
		if err := rows.Scan(
			&entry.ID, &entry.RecordKind, &entry.RecordID,
			&entry.Action, &entry.Actor, &entry.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}
