package domain

// Clinic is a registered clinic record. The ID is assigned by the store on
// creation and never changes afterwards.
type Clinic struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
