package handler

import (
	"github.com/clinichub/clinic-registry/internal/core/domain"
	"github.com/clinichub/clinic-registry/internal/core/ports"
)

// --- Domain → HTTP response ---

func toClinicResponse(c *domain.Clinic) clinicResponse {
	return clinicResponse{ID: c.ID, Name: c.Name}
}

func toClinicListResponse(clinics []*domain.Clinic) []clinicResponse {
	out := make([]clinicResponse, len(clinics))
	for i, c := range clinics {
		out[i] = toClinicResponse(c)
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func toUserListResponse(users []*domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}

func toAuditListResponse(entries []*ports.AuditEntryView) []auditEntryResponse {
	out := make([]auditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = auditEntryResponse{
			ID:         e.ID,
			RecordKind: e.RecordKind,
			RecordID:   e.RecordID,
			Action:     e.Action,
			Actor:      e.Actor,
			OccurredAt: e.OccurredAt.UTC(),
		}
	}
	return out
}
