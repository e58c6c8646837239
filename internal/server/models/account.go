// Package models defines server-side records persisted by the repositories.
package models

import "time"

// Account is a registered identity. PasswordHash is never serialized to
// clients; handlers build their own response shapes.
type Account struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
