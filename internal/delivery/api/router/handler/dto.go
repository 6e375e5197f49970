package handler

import (
	"time"

	"projectdesk/internal/domain/entity"
	"projectdesk/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of a user; the password hash never leaves the server.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type SessionResponse struct {
	AccessToken string `json:"access_token"`
}

type ProjectResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func toProjectResponse(project *entity.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Attributes:  project.Attributes,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

type ProjectPageResponse struct {
	Projects    []*ProjectResponse `json:"projects"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
	TotalCount  int64              `json:"totalCount"`
}

func toProjectPageResponse(page *usecase.ProjectPage) *ProjectPageResponse {
	projects := make([]*ProjectResponse, 0, len(page.Projects))
	for _, project := range page.Projects {
		projects = append(projects, toProjectResponse(project))
	}

	return &ProjectPageResponse{
		Projects:    projects,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		TotalCount:  page.TotalCount,
	}
}
