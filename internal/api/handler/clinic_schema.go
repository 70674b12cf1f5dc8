package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// clinicRequest is the payload for POST and PUT /api/clinics. ID is a
// pointer so "absent" and "zero" are distinguishable: POST rejects a
// supplied id, PUT requires one.
type clinicRequest struct {
	ID   *int64 `json:"id"`
	Name string `json:"name" validate:"required"`
}

// clinicResponse is owned by the transport layer so the JSON contract is not
// coupled to internal service changes.
type clinicResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
