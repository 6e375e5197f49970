package usecase

import (
	"context"

	"projectdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProjectInput defines the fields of a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	Attributes  map[string]any
}

// ListProjectsInput selects one page of projects. Zero or negative Page and
// PageSize fall back to the first page and the default size.
type ListProjectsInput struct {
	Search   string
	Page     int
	PageSize int
}

// ProjectPage is one page of a project listing.
type ProjectPage struct {
	Projects    []*entity.Project
	TotalPages  int
	CurrentPage int
	TotalCount  int64
}

// ProjectUsecase defines project CRUD and listing.
type ProjectUsecase interface {
	Create(ctx context.Context, input *CreateProjectInput) (*entity.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	List(ctx context.Context, input *ListProjectsInput) (*ProjectPage, error)

	// Update merges patch into the stored project and returns the result.
	Update(ctx context.Context, id uuid.UUID, patch entity.ProjectPatch) (*entity.Project, error)

	// Delete removes the project and returns its last stored state.
	Delete(ctx context.Context, id uuid.UUID) (*entity.Project, error)
}
