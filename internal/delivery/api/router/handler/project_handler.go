package handler

import (
	"log/slog"
	"net/http"

	"projectdesk/internal/delivery/api/response"
	"projectdesk/internal/domain/entity"
	"projectdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProjectHandlerParams holds dependencies for ProjectHandler, injected by Fx.
type ProjectHandlerParams struct {
	fx.In

	ProjectUC usecase.ProjectUsecase
	Logger    *slog.Logger
}

// ProjectHandler serves project CRUD and listing.
type ProjectHandler struct {
	projectUC usecase.ProjectUsecase
	logger    *slog.Logger
}

func NewProjectHandler(params ProjectHandlerParams) *ProjectHandler {
	return &ProjectHandler{
		projectUC: params.ProjectUC,
		logger:    params.Logger,
	}
}

type CreateProjectRequest struct {
	Name        string         `json:"name" validate:"required,max=255"`
	Description string         `json:"description"`
	Attributes  map[string]any `json:"attributes"`
}

// UpdateProjectRequest is a partial update; absent fields stay as they are.
// An attribute set to null is removed.
type UpdateProjectRequest struct {
	Name        *string        `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string        `json:"description"`
	Attributes  map[string]any `json:"attributes"`
}

type ListProjectsQuery struct {
	Search   string `query:"search"`
	Page     int    `query:"page" validate:"gte=0"`
	PageSize int    `query:"pageSize" validate:"gte=0"`
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(c echo.Context) error {
	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid project input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	project, err := h.projectUC.Create(c.Request().Context(), &usecase.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Attributes:  req.Attributes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProjectResponse(project))
}

// List handles GET /projects?search=&page=&pageSize=.
func (h *ProjectHandler) List(c echo.Context) error {
	var query ListProjectsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "Invalid pagination query")
	}

	if err := c.Validate(&query); err != nil {
		return errors.WithStack(err)
	}

	page, err := h.projectUC.List(c.Request().Context(), &usecase.ListProjectsInput{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProjectPageResponse(page))
}

// Get handles GET /projects/:id.
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid project ID")
	}

	project, err := h.projectUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProjectResponse(project))
}

// Update handles PATCH /projects/:id.
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid project ID")
	}

	var req UpdateProjectRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return response.BindingError(c, "Invalid project input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	project, err := h.projectUC.Update(c.Request().Context(), id, entity.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		Attributes:  req.Attributes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProjectResponse(project))
}

// Delete handles DELETE /projects/:id and returns the removed project.
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid project ID")
	}

	project, err := h.projectUC.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProjectResponse(project))
}
