// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in and own a session.
type User struct {
	ID           uuid.UUID // Assigned by the persistence layer on create.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash; never leaves the service boundary.
	Name         string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
