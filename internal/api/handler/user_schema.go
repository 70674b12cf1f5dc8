package handler

import "time"

// createUserRequest is the payload for POST /api/users (registration).
type createUserRequest struct {
	ID        *int64 `json:"id"`
	Username  string `json:"username" validate:"required,max=50"`
	Password  string `json:"password" validate:"required,min=4,max=100"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// updateUserRequest is the payload for PUT /api/users. An empty password
// keeps the stored one.
type updateUserRequest struct {
	ID        *int64 `json:"id"`
	Username  string `json:"username" validate:"required,max=50"`
	Password  string `json:"password" validate:"omitempty,min=4,max=100"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// userResponse deliberately has no password field; the hash never leaves
// the service.
type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// tokenResponse wraps the issued bearer token; its sole field is the token
// string. The same token is also emitted as an Authorization response header.
type tokenResponse struct {
	Token string `json:"token"`
}

type auditEntryResponse struct {
	ID         int64     `json:"id"`
	RecordKind string    `json:"record_kind"`
	RecordID   int64     `json:"record_id"`
	Action     string    `json:"action"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
