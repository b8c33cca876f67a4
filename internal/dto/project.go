package dto

import (
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/query"
	"github.com/fazla-cloud/thunder-agency-platform/internal/services"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	ClientName  string    `json:"client_name,omitempty"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectListResponse represents a filtered project list
type ProjectListResponse struct {
	Projects []ProjectDTO     `json:"projects"`
	Filters  query.ListParams `json:"filters"`
}

// ProjectDetailResponse is a project page with its filtered tasks
type ProjectDetailResponse struct {
	Project      ProjectDTO       `json:"project"`
	Tasks        []TaskDTO        `json:"tasks"`
	Filters      query.ListParams `json:"filters"`
	StatusCounts map[string]int   `json:"status_counts"`
}

// NewTaskFormResponse is the task form with its option lists
type NewTaskFormResponse struct {
	Project ProjectDTO       `json:"project"`
	Options services.Options `json:"options"`
	Status  string           `json:"default_status"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project, clientName func(string) string) ProjectDTO {
	dto := ProjectDTO{
		ID:          project.ID,
		ClientID:    project.ClientID,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
	if clientName != nil {
		dto.ClientName = clientName(project.ClientID)
	}
	return dto
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project, clientName func(string) string) []ProjectDTO {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project, clientName)
	}
	return items
}
