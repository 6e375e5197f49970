package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"projectdesk/internal/domain/entity"
	domainerrors "projectdesk/internal/domain/errors"
	"projectdesk/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectColumns = []string{"id", "name", "description", "attributes", "created_at", "updated_at"}

func TestProjectRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "projects" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(id.String(), "Apollo", "moon", []byte(`{"priority":"high"}`), now, now))

	project, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, project.ID)
	assert.Equal(t, "Apollo", project.Name)
	assert.Equal(t, "moon", project.Description)
	assert.Equal(t, map[string]any{"priority": "high"}, project.Attributes)
}

func TestProjectRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "projects" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(projectColumns))

	project, err := repo.FindByID(context.Background(), uuid.New())
	assert.Nil(t, project)
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
}

func TestProjectRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "projects"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	project := &entity.Project{Name: "Apollo", Attributes: map[string]any{"team": "nasa"}}
	require.NoError(t, repo.Create(context.Background(), project))

	assert.Equal(t, uuid.Version(7), project.ID.Version())
	assert.False(t, project.CreatedAt.IsZero())
}

func TestProjectRepository_List_WithSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	now := time.Now().UTC()
	first, second := uuid.New(), uuid.New()
	mock.ExpectQuery(
		regexp.QuoteMeta(`SELECT * FROM "projects" WHERE name LIKE $1 ORDER BY created_at DESC, id DESC LIMIT`) +
			`.*` + regexp.QuoteMeta(`OFFSET`),
	).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(first.String(), "moon base", "", nil, now, now).
			AddRow(second.String(), "moon rover", "", nil, now.Add(-time.Minute), now))

	projects, err := repo.List(context.Background(), repository.ProjectFilter{Search: "moon", Offset: 10, Limit: 10})
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, first, projects[0].ID)
	assert.Equal(t, second, projects[1].ID)
	assert.Nil(t, projects[0].Attributes)
}

func TestProjectRepository_List_NoSearchFirstPage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "projects" ORDER BY created_at DESC, id DESC LIMIT`)).
		WillReturnRows(sqlmock.NewRows(projectColumns))

	projects, err := repo.List(context.Background(), repository.ProjectFilter{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.NotNil(t, projects)
}

func TestProjectRepository_Count_EscapesWildcards(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "projects" WHERE name LIKE $1`)).
		WithArgs(`%50\%\_off%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.Count(context.Background(), "50%_off")
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestProjectRepository_Count_NoSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "projects"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	total, err := repo.Count(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestProjectRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	project := &entity.Project{ID: uuid.New(), Name: "Apollo", Description: "updated"}
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "projects" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), project))
	assert.False(t, project.UpdatedAt.IsZero())
}

func TestProjectRepository_Update_NoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "projects" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Project{ID: uuid.New(), Name: "Apollo"})
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
}

func TestProjectRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "projects" WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), id))
}

func TestProjectRepository_Delete_Failure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "projects"`)).
		WillReturnError(errors.New("lock timeout"))

	err := repo.Delete(context.Background(), uuid.New())

	var dbErr *domainerrors.DatabaseExecuteError
	require.True(t, errors.As(err, &dbErr))
}

func TestProjectRepository_Delete_NoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "projects"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
}
