package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"projectdesk/config"
	deliverycontext "projectdesk/internal/delivery/context"
	"projectdesk/internal/domain/entity"
	domainerrors "projectdesk/internal/domain/errors"
	"projectdesk/internal/domain/repository"
	"projectdesk/internal/domain/service"
	"projectdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// projectService implements the ProjectUsecase interface.
type projectService struct {
	txManager       repository.TransactionManager
	projectRepo     repository.ProjectRepository
	cache           service.ProjectCache
	publisher       service.EventPublisher
	logger          *slog.Logger
	defaultPageSize int
	maxPageSize     int
	now             func() time.Time

	loads  singleflight.Group
	epochs cacheEpochs
}

// cacheEpochs counts cache invalidations per id stripe. A load that watched
// its stripe move while it ran must not leave its snapshot cached.
type cacheEpochs [64]atomic.Uint64

func (e *cacheEpochs) of(id uuid.UUID) *atomic.Uint64 {
	return &e[int(id[len(id)-1])%len(e)]
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProjectRepo repository.ProjectRepository
	Cache       service.ProjectCache
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProjectService creates a new project service.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	defaultPageSize, maxPageSize := config.DefaultPageSize, config.MaxPageSize
	if params.Config != nil && params.Config.Pagination != nil {
		defaultPageSize = params.Config.Pagination.DefaultPageSize
		maxPageSize = params.Config.Pagination.MaxPageSize
	}

	return &projectService{
		txManager:       params.TxManager,
		projectRepo:     params.ProjectRepo,
		cache:           params.Cache,
		publisher:       params.Publisher,
		logger:          params.Logger,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		now:             time.Now,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *projectService) Create(ctx context.Context, input *usecase.CreateProjectInput) (*entity.Project, error) {
	project := &entity.Project{
		Name:        input.Name,
		Description: input.Description,
		Attributes:  input.Attributes,
	}

	if err := srv.projectRepo.Create(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	srv.log(ctx).Info("Project created", slog.Any("projectID", project.ID))
	srv.publish(ctx, service.ProjectCreated, project)

	return project, nil
}

// GetByID reads through the cache. Concurrent misses for one id in the same
// epoch share a single repository load, which outlives any one caller.
func (srv *projectService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	cached, err := srv.cache.Get(ctx, id)
	if err != nil {
		srv.log(ctx).Warn("Project cache read failed", slog.Any("projectID", id), slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	epoch := srv.epochs.of(id).Load()
	loadCtx := context.WithoutCancel(ctx)
	key := id.String() + "@" + strconv.FormatUint(epoch, 10)

	loads := srv.loads.DoChan(key, func() (any, error) {
		project, err := srv.projectRepo.FindByID(loadCtx, id)
		if err != nil {
			return nil, err
		}

		srv.fill(loadCtx, project, epoch)

		return project, nil
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res := <-loads:
		if res.Err != nil {
			return nil, srv.notFoundOr(res.Err, id, "failed to find project")
		}

		return cloneProject(res.Val.(*entity.Project)), nil
	}
}

func (srv *projectService) List(ctx context.Context, input *usecase.ListProjectsInput) (*usecase.ProjectPage, error) {
	window := resolvePage(input.Page, input.PageSize, srv.defaultPageSize, srv.maxPageSize)

	projects, err := srv.projectRepo.List(ctx, repository.ProjectFilter{
		Search: input.Search,
		Offset: window.Offset,
		Limit:  window.PageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	total, err := srv.projectRepo.Count(ctx, input.Search)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count projects")
	}

	return &usecase.ProjectPage{
		Projects:    projects,
		TotalPages:  totalPages(total, window.PageSize),
		CurrentPage: window.Page,
		TotalCount:  total,
	}, nil
}

// Update checks existence and writes inside one transaction. An empty patch
// returns the stored project without writing.
func (srv *projectService) Update(ctx context.Context, id uuid.UUID, patch entity.ProjectPatch) (*entity.Project, error) {
	var updated *entity.Project
	changed := !patch.IsEmpty()

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.ProjectRepo()

		project, err := repo.FindByID(ctx, id)
		if err != nil {
			return srv.notFoundOr(err, id, "failed to find project for update")
		}

		if changed {
			project.Apply(patch)
			project.UpdatedAt = srv.now()

			if err := repo.Update(ctx, project); err != nil {
				return srv.writeFailure(err, "project update affected no rows", "failed to update project")
			}
		}

		updated = project

		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		srv.invalidate(ctx, id)
		srv.log(ctx).Info("Project updated", slog.Any("projectID", id))
		srv.publish(ctx, service.ProjectUpdated, updated)
	}

	return updated, nil
}

func (srv *projectService) Delete(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var deleted *entity.Project

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.ProjectRepo()

		project, err := repo.FindByID(ctx, id)
		if err != nil {
			return srv.notFoundOr(err, id, "failed to find project for delete")
		}

		if err := repo.Delete(ctx, id); err != nil {
			return srv.writeFailure(err, "project delete affected no rows", "failed to delete project")
		}

		deleted = project

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.invalidate(ctx, id)
	srv.log(ctx).Info("Project deleted", slog.Any("projectID", id))
	srv.publish(ctx, service.ProjectDeleted, deleted)

	return deleted, nil
}

func (srv *projectService) notFoundOr(err error, id uuid.UUID, message string) error {
	if errors.Is(err, repository.ErrProjectNotFound) {
		return errors.WithStack(domainerrors.NewProjectNotFoundError(id))
	}

	return errors.Wrap(err, message)
}

// writeFailure reports a row that vanished between the existence check and
// the write as a database failure, not a missing project.
func (srv *projectService) writeFailure(err error, vanished, message string) error {
	if errors.Is(err, repository.ErrProjectNotFound) {
		return domainerrors.NewDatabaseExecuteError(err, vanished)
	}

	return errors.Wrap(err, message)
}

// fill caches a project loaded during epoch. If a write invalidated the id
// meanwhile, the snapshot may predate it and is dropped again.
func (srv *projectService) fill(ctx context.Context, project *entity.Project, epoch uint64) {
	current := srv.epochs.of(project.ID)
	if current.Load() != epoch {
		return
	}

	if err := srv.cache.Set(ctx, project); err != nil {
		srv.log(ctx).Warn("Project cache write failed", slog.Any("projectID", project.ID), slog.Any("error", err))

		return
	}

	if current.Load() != epoch {
		srv.evict(ctx, project.ID)
	}
}

// invalidate bumps the epoch before evicting so in-flight loads see it.
func (srv *projectService) invalidate(ctx context.Context, id uuid.UUID) {
	srv.epochs.of(id).Add(1)
	srv.evict(ctx, id)
}

func (srv *projectService) evict(ctx context.Context, id uuid.UUID) {
	if err := srv.cache.Invalidate(ctx, id); err != nil {
		srv.log(ctx).Warn("Project cache invalidation failed", slog.Any("projectID", id), slog.Any("error", err))
	}
}

// publish never fails the request; lost events are logged.
func (srv *projectService) publish(ctx context.Context, eventType service.ProjectEventType, project *entity.Project) {
	event := &service.ProjectEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		ProjectID:  project.ID.String(),
		Name:       project.Name,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishProjectEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish project event",
			slog.String("type", string(eventType)),
			slog.Any("projectID", project.ID),
			slog.Any("error", err),
		)
	}
}

func cloneProject(project *entity.Project) *entity.Project {
	clone := *project
	if project.Attributes != nil {
		clone.Attributes = make(map[string]any, len(project.Attributes))
		for key, value := range project.Attributes {
			clone.Attributes[key] = value
		}
	}

	return &clone
}
