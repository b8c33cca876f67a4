package dto

import (
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/query"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID              string            `json:"id"`
	ProjectID       string            `json:"project_id"`
	ProjectName     string            `json:"project_name,omitempty"`
	ClientID        string            `json:"client_id"`
	AssignedTo      *string           `json:"assigned_to"`
	Title           string            `json:"title"`
	ContentType     string            `json:"content_type"`
	Platform        string            `json:"platform"`
	DurationSeconds *int              `json:"duration_seconds"`
	Dimensions      *string           `json:"dimensions"`
	Brief           string            `json:"brief"`
	Status          models.TaskStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	AssignedProfile *PersonDTO        `json:"assigned_profile,omitempty"`
	ClientProfile   *PersonDTO        `json:"client_profile,omitempty"`
}

// TaskListResponse represents a filtered task list with its tab counts
type TaskListResponse struct {
	Tasks        []TaskDTO        `json:"tasks"`
	Filters      query.ListParams `json:"filters"`
	StatusCounts map[string]int   `json:"status_counts"`
}

// TaskDetailResponse is the task detail page
type TaskDetailResponse struct {
	Task      TaskDTO     `json:"task"`
	Assignees []PersonDTO `json:"assignees,omitempty"`
}

// ToTaskDTO converts a Task model to TaskDTO. People found in people are
// attached as assignee and client.
func ToTaskDTO(task models.Task, people map[string]models.Profile) TaskDTO {
	dto := TaskDTO{
		ID:              task.ID,
		ProjectID:       task.ProjectID,
		ClientID:        task.ClientID,
		AssignedTo:      task.AssignedTo,
		Title:           task.Title,
		ContentType:     task.ContentType,
		Platform:        task.Platform,
		DurationSeconds: task.DurationSeconds,
		Dimensions:      task.Dimensions,
		Brief:           task.Brief,
		Status:          task.Status,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
		AssignedProfile: ToPersonDTO(task.AssignedTo, people),
		ClientProfile:   ToPersonDTO(&task.ClientID, people),
	}

	// Include project name if preloaded
	if task.Project != nil {
		dto.ProjectName = task.Project.Name
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task, people map[string]models.Profile) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task, people)
	}
	return items
}

// PeopleIDs returns every client and assignee referenced by tasks
func PeopleIDs(tasks []models.Task) []string {
	ids := make([]string, 0, len(tasks)*2)
	for _, task := range tasks {
		ids = append(ids, task.ClientID)
		if task.AssignedTo != nil {
			ids = append(ids, *task.AssignedTo)
		}
	}
	return ids
}
