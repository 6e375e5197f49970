package service

import (
	"context"
	"time"
)

// ProjectEventType names a project lifecycle transition.
type ProjectEventType string

const (
	ProjectCreated ProjectEventType = "project.created"
	ProjectUpdated ProjectEventType = "project.updated"
	ProjectDeleted ProjectEventType = "project.deleted"
)

// ProjectEvent is published after a project write commits
type ProjectEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       ProjectEventType `json:"type"`
	ProjectID  string           `json:"project_id"`
	Name       string           `json:"name"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProjectEvent publishes a project lifecycle event
	PublishProjectEvent(ctx context.Context, event *ProjectEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
