// Package cache provides the Redis-backed project cache.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"projectdesk/internal/domain/entity"
	"projectdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyProject      = "project:"
	defaultCacheTTL = 5 * time.Minute
)

// projectSnapshot is the cached JSON form of a project.
type projectSnapshot struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// redisProjectCache caches single projects by id.
type redisProjectCache struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// NewRedisProjectCache returns a ProjectCache on top of rdb.
func NewRedisProjectCache(rdb redis.UniversalClient, ttl time.Duration) service.ProjectCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &redisProjectCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached project or nil on a miss.
func (c *redisProjectCache) Get(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	b, err := c.rdb.Get(ctx, projectKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get project")
	}

	return decodeProject(b)
}

// Set stores the project until the TTL elapses or it is invalidated.
func (c *redisProjectCache) Set(ctx context.Context, project *entity.Project) error {
	b, err := encodeProject(project)
	if err != nil {
		return err
	}

	return errors.Wrap(c.rdb.Set(ctx, projectKey(project.ID), b, c.ttl).Err(), "redis set project")
}

// Invalidate drops the cached entry for id.
func (c *redisProjectCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return errors.Wrap(c.rdb.Del(ctx, projectKey(id)).Err(), "redis delete project")
}

func projectKey(id uuid.UUID) string {
	return keyProject + id.String()
}

func encodeProject(project *entity.Project) ([]byte, error) {
	b, err := json.Marshal(projectSnapshot{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Attributes:  project.Attributes,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode cached project")
	}

	return b, nil
}

func decodeProject(b []byte) (*entity.Project, error) {
	var snapshot projectSnapshot
	if err := json.Unmarshal(b, &snapshot); err != nil {
		return nil, errors.Wrap(err, "decode cached project")
	}

	return &entity.Project{
		ID:          snapshot.ID,
		Name:        snapshot.Name,
		Description: snapshot.Description,
		Attributes:  snapshot.Attributes,
		CreatedAt:   snapshot.CreatedAt,
		UpdatedAt:   snapshot.UpdatedAt,
	}, nil
}

// noopProjectCache always misses.
type noopProjectCache struct{}

func (noopProjectCache) Get(context.Context, uuid.UUID) (*entity.Project, error) { return nil, nil }
func (noopProjectCache) Set(context.Context, *entity.Project) error             { return nil }
func (noopProjectCache) Invalidate(context.Context, uuid.UUID) error            { return nil }
