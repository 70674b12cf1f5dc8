package domain

import (
	"strings"
	"time"
)

// User models a registered account. PasswordHash holds the bcrypt digest and
// is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstname"`
	LastName     string    `json:"lastname"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeUsername lower-cases and trims a username. All storage and
// comparison goes through this form, so "Bob" and "bob " collide.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
