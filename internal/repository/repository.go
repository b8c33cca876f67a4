package repository

import (
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// CreateWithProfile creates a user and its profile within a single
	// transaction. The profile takes the user's ID.
	CreateWithProfile(user *models.User, profile *models.Profile) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// FindByID finds a profile by ID
	FindByID(id string) (*models.Profile, error)

	// FindByIDs returns the profiles among ids that exist
	FindByIDs(ids []string) ([]models.Profile, error)

	// List returns one page of profiles, newest first, and the total count
	List(filter ProfileFilter, page utils.PaginationParams) ([]models.Profile, int64, error)

	// UpdateFields writes the given columns of a profile
	UpdateFields(id string, fields map[string]any) error
}

// ProfileFilter holds filtering options for listing profiles
type ProfileFilter struct {
	Role     *models.Role
	IsActive *bool
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id string) (*models.Project, error)
	List(filter ProjectFilter) ([]models.Project, error)
	Update(project *models.Project) error
}

// ProjectFilter holds filtering options for listing projects
type ProjectFilter struct {
	ClientID *string
	Status   *string
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Task, error)

	// List retrieves tasks matching filter, newest first
	List(filter TaskFilter) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Assign sets the assignee and status of a task
	Assign(taskID, assigneeID string, status models.TaskStatus) error
}

// TaskFilter holds filtering options for listing tasks. Time bounds are
// half-open: CreatedFrom <= created_at < CreatedBefore.
type TaskFilter struct {
	ProjectID      *string
	ClientID       *string
	AssignedTo     *string
	Status         *models.TaskStatus
	CreatedFrom    *time.Time
	CreatedBefore  *time.Time
	PreloadProject bool
}

// Option is any of the admin-managed task option types.
type Option interface {
	models.ContentType | models.Platform | models.Duration | models.Dimension
}

// OptionRepository defines the interface for one option table
type OptionRepository[T Option] interface {
	List() ([]T, error)
	FindByID(id string) (*T, error)
	Create(item *T) error
	Update(item *T) error
	Delete(id string) error

	// Ensure creates item unless a row matching key already exists, in which
	// case item is filled from that row.
	Ensure(key map[string]any, item *T) error
}
