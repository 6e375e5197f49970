package postgres

import (
	"context"
	"maps"
	"strings"
	"time"

	"projectdesk/internal/domain/entity"
	domainerrors "projectdesk/internal/domain/errors"
	"projectdesk/internal/domain/repository"
	"projectdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// projectListOrder gives every row a unique position so pages never overlap.
const projectListOrder = "created_at DESC, id DESC"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// projectRepository implements the repository.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// FindByID retrieves a project by its unique ID.
func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by ID")
	}

	return toProjectDomain(&projectM), nil
}

// Create persists a new project.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate project id")
	}

	projectM := fromProjectDomain(project)
	projectM.ID = id

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required project information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// List returns one page of projects, newest first.
func (repo *projectRepository) List(ctx context.Context, filter repository.ProjectFilter) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel

	query := repo.filtered(ctx, filter.Search).Order(projectListOrder)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&projectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

// Count returns the number of projects matching search.
func (repo *projectRepository) Count(ctx context.Context, search string) (int64, error) {
	var total int64

	if err := repo.filtered(ctx, search).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count projects")
	}

	return total, nil
}

// Update overwrites the mutable columns of an existing project.
func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ?", project.ID).
		Updates(map[string]any{
			"name":        project.Name,
			"description": project.Description,
			"attributes":  toJSONMap(project.Attributes),
			"updated_at":  now,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update project")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	project.UpdatedAt = now

	return nil
}

// Delete removes a project by its ID.
func (repo *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProjectModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete project")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func (repo *projectRepository) filtered(ctx context.Context, search string) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.ProjectModel{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+likeEscaper.Replace(search)+"%")
	}

	return query
}

// --- Mapper Functions ---

func toProjectDomain(data *model.ProjectModel) *entity.Project {
	if data == nil {
		return nil
	}

	// A NULL column scans into an empty map
	var attributes map[string]any
	if len(data.Attributes) > 0 {
		attributes = maps.Clone(map[string]any(data.Attributes))
	}

	return &entity.Project{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Attributes:  attributes,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	if data == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Attributes:  toJSONMap(data.Attributes),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toJSONMap(attributes map[string]any) datatypes.JSONMap {
	if attributes == nil {
		return nil
	}

	return datatypes.JSONMap(maps.Clone(attributes))
}
