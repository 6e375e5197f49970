package cache

import (
	"context"
	"log/slog"

	"projectdesk/config"
	"projectdesk/internal/domain/lifecycle"
	"projectdesk/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines dependencies for the project cache
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewProjectCache returns a Redis cache when redis is configured and a
// cache that always misses otherwise.
func NewProjectCache(params Params) service.ProjectCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, project cache disabled")

		return noopProjectCache{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := rdb.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Project cache enabled",
				slog.String("addr", cfg.Addr),
				slog.Duration("ttl", cfg.TTL),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return NewRedisProjectCache(rdb, cfg.TTL)
}
