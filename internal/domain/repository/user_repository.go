// Package repository holds the persistence ports for users and projects.
// Implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"errors"

	"projectdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned by lookups that match no account.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores accounts keyed by id and by unique email.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create assigns ID and timestamps on user. A taken email yields
	// domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error
}
