package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound           = errors.New("task not found")
	ErrTaskPermissionDenied   = errors.New("user does not have permission to modify this task")
	ErrTitleRequired          = errors.New("title is required")
	ErrContentTypeRequired    = errors.New("content type is required")
	ErrPlatformRequired       = errors.New("platform is required")
	ErrBriefRequired          = errors.New("brief is required")
	ErrInvalidDuration        = errors.New("duration must be a positive number of seconds")
	ErrInvalidTaskStatus      = errors.New("invalid task status")
	ErrAssigneeRequired       = errors.New("assignee is required")
	ErrInvalidTaskAssignee    = errors.New("tasks can only be assigned to active designers or marketers")
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
)

// BriefDrafter writes a first-draft brief for a task.
type BriefDrafter interface {
	DraftBrief(ctx context.Context, req BriefRequest) (string, error)
}

// TaskService handles task business logic
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	profileRepo repository.ProfileRepository
	drafter     BriefDrafter
}

// NewTaskService creates a new TaskService. drafter may be nil when AI
// drafting is not configured.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, profileRepo repository.ProfileRepository, drafter BriefDrafter) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		profileRepo: profileRepo,
		drafter:     drafter,
	}
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	ProjectID  *string
	ClientID   *string
	AssignedTo *string
	Status     *models.TaskStatus
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	ClientID        string
	ProjectID       string
	Title           string
	ContentType     string
	Platform        string
	DurationSeconds *int
	Dimensions      *string
	Brief           string
	Status          models.TaskStatus
}

// UpdateTaskInput represents input for updating a task
type UpdateTaskInput struct {
	Title           *string
	ContentType     *string
	Platform        *string
	DurationSeconds *int
	ClearDuration   bool
	Dimensions      *string
	Brief           *string
	Status          *models.TaskStatus
}

// onlyStatus reports whether the update touches nothing but the status.
func (in UpdateTaskInput) onlyStatus() bool {
	return in.Title == nil && in.ContentType == nil && in.Platform == nil &&
		in.DurationSeconds == nil && !in.ClearDuration && in.Dimensions == nil && in.Brief == nil
}

// ListTasks returns tasks matching input, newest first, with their project
func (s *TaskService) ListTasks(input ListTasksInput) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(repository.TaskFilter{
		ProjectID:      input.ProjectID,
		ClientID:       input.ClientID,
		AssignedTo:     input.AssignedTo,
		Status:         input.Status,
		PreloadProject: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task with its project
func (s *TaskService) GetTask(taskID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Project")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// GetTaskForViewer returns a task the viewer may see: admins see every task,
// clients their own and assignees those assigned to them.
func (s *TaskService) GetTaskForViewer(taskID string, viewer *models.Profile) (*models.Task, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	if viewer == nil {
		return nil, ErrTaskPermissionDenied
	}
	switch viewer.Role {
	case models.RoleAdmin:
		return task, nil
	case models.RoleClient:
		if task.ClientID == viewer.ID {
			return task, nil
		}
	case models.RoleDesigner, models.RoleMarketer:
		if isAssignee(task, viewer) {
			return task, nil
		}
	}
	return nil, ErrTaskPermissionDenied
}

// CreateTask creates a task inside one of the client's projects
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	task := &models.Task{
		ClientID:        input.ClientID,
		ProjectID:       input.ProjectID,
		Title:           strings.TrimSpace(input.Title),
		ContentType:     strings.TrimSpace(input.ContentType),
		Platform:        strings.TrimSpace(input.Platform),
		DurationSeconds: input.DurationSeconds,
		Dimensions:      trimmedOrNil(input.Dimensions),
		Brief:           strings.TrimSpace(input.Brief),
		Status:          input.Status,
	}
	if task.Status == "" {
		task.Status = models.TaskStatusDrafts
	}
	if err := validateTask(task); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if project.ClientID != input.ClientID {
		return nil, ErrProjectPermissionDenied
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.GetTask(task.ID)
}

// UpdateTask edits a task. Admins and the owning client may change every
// field; the assignee may change only the status.
func (s *TaskService) UpdateTask(taskID string, actor *models.Profile, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if !canEditTask(task, actor, input) {
		return nil, ErrTaskPermissionDenied
	}

	if input.Title != nil {
		task.Title = strings.TrimSpace(*input.Title)
	}
	if input.ContentType != nil {
		task.ContentType = strings.TrimSpace(*input.ContentType)
	}
	if input.Platform != nil {
		task.Platform = strings.TrimSpace(*input.Platform)
	}
	if input.ClearDuration {
		task.DurationSeconds = nil
	} else if input.DurationSeconds != nil {
		task.DurationSeconds = input.DurationSeconds
	}
	if input.Dimensions != nil {
		task.Dimensions = trimmedOrNil(input.Dimensions)
	}
	if input.Brief != nil {
		task.Brief = strings.TrimSpace(*input.Brief)
	}
	if input.Status != nil {
		task.Status = *input.Status
	}

	if err := validateTask(task); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.GetTask(task.ID)
}

// AssignTask hands a task to an active designer or marketer. Drafts move to
// in progress; other statuses are kept.
func (s *TaskService) AssignTask(taskID, assigneeID string) (*models.Task, error) {
	if strings.TrimSpace(assigneeID) == "" {
		return nil, ErrAssigneeRequired
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	assignee, err := s.profileRepo.FindByID(assigneeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidTaskAssignee
		}
		return nil, fmt.Errorf("failed to verify assignee: %w", err)
	}
	if !assignee.IsActive || !assignee.Role.IsAssignee() {
		return nil, ErrInvalidTaskAssignee
	}

	status := task.Status
	if status == models.TaskStatusDrafts {
		status = models.TaskStatusInProgress
	}

	if err := s.taskRepo.Assign(task.ID, assignee.ID, status); err != nil {
		return nil, fmt.Errorf("failed to assign task: %w", err)
	}

	return s.GetTask(task.ID)
}

// DraftBrief asks the configured assistant for a brief.
func (s *TaskService) DraftBrief(ctx context.Context, req BriefRequest) (string, error) {
	if s.drafter == nil {
		return "", ErrAIServiceNotConfigured
	}
	if strings.TrimSpace(req.Title) == "" {
		return "", ErrTitleRequired
	}
	return s.drafter.DraftBrief(ctx, req)
}

func validateTask(task *models.Task) error {
	switch {
	case task.Title == "":
		return ErrTitleRequired
	case task.ContentType == "":
		return ErrContentTypeRequired
	case task.Platform == "":
		return ErrPlatformRequired
	case task.Brief == "":
		return ErrBriefRequired
	case task.DurationSeconds != nil && *task.DurationSeconds <= 0:
		return ErrInvalidDuration
	case !task.Status.Valid():
		return ErrInvalidTaskStatus
	}
	return nil
}

func isAssignee(task *models.Task, viewer *models.Profile) bool {
	return task.AssignedTo != nil && *task.AssignedTo == viewer.ID
}

func canEditTask(task *models.Task, actor *models.Profile, input UpdateTaskInput) bool {
	if actor == nil {
		return false
	}
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleClient:
		return task.ClientID == actor.ID
	case models.RoleDesigner, models.RoleMarketer:
		return isAssignee(task, actor) && input.onlyStatus()
	}
	return false
}
