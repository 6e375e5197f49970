package repository

import (
	"context"
	"errors"

	"projectdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProjectNotFound is returned when no project matches the given id.
var ErrProjectNotFound = errors.New("project not found")

// ProjectFilter narrows and windows a project listing.
type ProjectFilter struct {
	Search string // substring match on name; empty matches all
	Offset int
	Limit  int
}

// ProjectRepository persists projects.
type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// Create assigns the ID and timestamps of project.
	Create(ctx context.Context, project *entity.Project) error

	// List returns one window of projects ordered newest first, ties broken by id.
	List(ctx context.Context, filter ProjectFilter) ([]*entity.Project, error)

	// Count returns the number of projects matching search, ignoring any window.
	Count(ctx context.Context, search string) (int64, error)

	// Update writes name, description and attributes of project and refreshes UpdatedAt.
	Update(ctx context.Context, project *entity.Project) error

	Delete(ctx context.Context, id uuid.UUID) error
}
