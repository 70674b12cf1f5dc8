package ports

import (
	"context"
	"time"
)

// AuditEventInput is the DTO handed from the service layer to the audit
// pipeline.
type AuditEventInput struct {
	RecordKind string
	RecordID   int64
	Action     string
	Actor      string
	OccurredAt time.Time
}

// AuditTrail accepts audit events for asynchronous persistence. Record must
// not block the caller beyond queue admission.
type AuditTrail interface {
	Record(event AuditEventInput)
}

// AuditService processes queued audit events and serves read access to the
// trail.
type AuditService interface {
	Process(ctx context.Context, event AuditEventInput) error
	ListRecent(ctx context.Context, limit int) ([]*AuditEntryView, error)
}

// AuditEntryView is the read model returned to the API layer.
type AuditEntryView struct {
	ID         int64
	RecordKind string
	RecordID   int64
	Action     string
	Actor      string
	OccurredAt time.Time
}
