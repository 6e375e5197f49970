package service

import (
	"context"

	"projectdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ProjectCache is a best-effort read-through store for single projects.
// Get returns (nil, nil) on a miss.
type ProjectCache interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	Set(ctx context.Context, project *entity.Project) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}
