package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound         = errors.New("project not found")
	ErrProjectNameRequired     = errors.New("project name is required")
	ErrInvalidProjectStatus    = errors.New("invalid project status")
	ErrProjectPermissionDenied = errors.New("user does not have permission to access this project")
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	ClientID    string
	Name        string
	Description *string
	Status      string
}

// UpdateProjectInput represents input for updating a project
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *string
}

// ListProjects returns projects newest first, limited to clientID when set.
func (s *ProjectService) ListProjects(clientID *string) ([]models.Project, error) {
	projects, err := s.projectRepo.List(repository.ProjectFilter{ClientID: clientID})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns a project by ID
func (s *ProjectService) GetProject(id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// GetProjectForViewer returns a project the viewer owns, or any project for
// admins.
func (s *ProjectService) GetProjectForViewer(id string, viewer *models.Profile) (*models.Project, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	if !canManageProject(project, viewer) {
		return nil, ErrProjectPermissionDenied
	}
	return project, nil
}

// CreateProject creates a project owned by input.ClientID
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProjectNameRequired
	}
	status := input.Status
	if status == "" {
		status = models.ProjectStatusActive
	}
	if !slices.Contains(models.ProjectStatuses(), status) {
		return nil, ErrInvalidProjectStatus
	}

	project := &models.Project{
		ClientID:    input.ClientID,
		Name:        name,
		Description: trimmedOrNil(input.Description),
		Status:      status,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// UpdateProject edits a project owned by actor, or any project for admins
func (s *ProjectService) UpdateProject(id string, actor *models.Profile, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.GetProjectForViewer(id, actor)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrProjectNameRequired
		}
		project.Name = name
	}
	if input.Description != nil {
		project.Description = trimmedOrNil(input.Description)
	}
	if input.Status != nil {
		if !slices.Contains(models.ProjectStatuses(), *input.Status) {
			return nil, ErrInvalidProjectStatus
		}
		project.Status = *input.Status
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func canManageProject(project *models.Project, viewer *models.Profile) bool {
	if viewer == nil {
		return false
	}
	return viewer.Role == models.RoleAdmin || project.ClientID == viewer.ID
}
