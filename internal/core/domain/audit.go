package domain

import "time"

// Audit actions recorded for record mutations.
const (
	AuditCreated = "created"
	AuditUpdated = "updated"
	AuditDeleted = "deleted"
)

// Record kinds that appear in audit entries.
const (
	KindClinic = "clinic"
	KindUser   = "user"
)

// AuditEntry records a single mutation of a record. Actor is the
// authenticated username that performed it, empty for unauthenticated
// paths such as registration.
type AuditEntry struct {
	ID         int64     `json:"id"`
	RecordKind string    `json:"record_kind"`
	RecordID   int64     `json:"record_id"`
	Action     string    `json:"action"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
