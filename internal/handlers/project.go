package handlers

import (
	"net/http"
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/dto"
	apierrors "github.com/fazla-cloud/thunder-agency-platform/internal/errors"
	"github.com/fazla-cloud/thunder-agency-platform/internal/middleware"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/query"
	"github.com/fazla-cloud/thunder-agency-platform/internal/services"
	"github.com/gin-gonic/gin"
)

// ProjectHandler serves project pages and mutations.
type ProjectHandler struct {
	projectService *services.ProjectService
	taskService    *services.TaskService
	profileService *services.ProfileService
	optionService  *services.OptionService
	loc            *time.Location
}

// NewProjectHandler creates a new ProjectHandler. Date filters are evaluated
// in loc.
func NewProjectHandler(projectService *services.ProjectService, taskService *services.TaskService, profileService *services.ProfileService, optionService *services.OptionService, loc *time.Location) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		taskService:    taskService,
		profileService: profileService,
		optionService:  optionService,
		loc:            loc,
	}
}

// AdminList renders every project with its client's name.
func (h *ProjectHandler) AdminList(c *gin.Context) {
	h.list(c, nil)
}

// ClientList renders the viewer's own projects.
func (h *ProjectHandler) ClientList(c *gin.Context) {
	profile := mustProfile(c)
	if profile == nil {
		return
	}
	h.list(c, &profile.ID)
}

func (h *ProjectHandler) list(c *gin.Context, clientID *string) {
	params := query.ParseListParams(c.Request.URL.Query())

	projects, err := h.projectService.ListProjects(clientID)
	if err != nil {
		logFetch(c, "projects", err)
		projects = []models.Project{}
	}

	clientIDs := make([]string, len(projects))
	for i, p := range projects {
		clientIDs[i] = p.ClientID
	}
	nameOf := services.NameOf(h.profileService.Profiles(clientIDs))

	filtered := query.Apply(projects, params, h.loc, query.ProjectRecord(nameOf))
	render(c, dto.ProjectListResponse{
		Projects: dto.ToProjectDTOs(filtered, nameOf),
		Filters:  params,
	})
}

// Detail renders the project loaded by RequireProjectAccess with its tasks.
// Tab counts cover every task of the project; the list honours the filters.
func (h *ProjectHandler) Detail(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.NotFound(c, "Project not found")
		return
	}
	params := query.ParseListParams(c.Request.URL.Query())

	tasks, err := h.taskService.ListTasks(services.ListTasksInput{ProjectID: &project.ID})
	if err != nil {
		logFetch(c, "tasks", err)
		tasks = []models.Task{}
	}

	people := h.profileService.Profiles(append(dto.PeopleIDs(tasks), project.ClientID))
	filtered := query.Apply(tasks, params, h.loc, query.TaskRecord)

	render(c, dto.ProjectDetailResponse{
		Project:      dto.ToProjectDTO(*project, services.NameOf(people)),
		Tasks:        dto.ToTaskDTOs(filtered, people),
		Filters:      params,
		StatusCounts: query.StatusTabCounts(tasks, query.TaskStatusKeys(), query.TaskStatus),
	})
}

// NewTaskForm renders the option lists for a new task in the viewer's
// project.
func (h *ProjectHandler) NewTaskForm(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.NotFound(c, "Project not found")
		return
	}

	render(c, dto.NewTaskFormResponse{
		Project: dto.ToProjectDTO(*project, nil),
		Options: h.optionService.LoadAll(),
		Status:  string(models.TaskStatusDrafts),
	})
}

// CreateProject creates a project owned by the calling client.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		Name        string  `json:"name" binding:"required"`
		Description *string `json:"description"`
		Status      string  `json:"status"`
	}

	profile, ok := middleware.GetProfile(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingFailed(c, err)
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		ClientID:    profile.ID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project, nil))
}

// UpdateProject edits a project owned by the caller, or any project for
// admins.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	type UpdateProjectRequest struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
	}

	profile, ok := middleware.GetProfile(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingFailed(c, err)
		return
	}

	project, err := h.projectService.UpdateProject(c.Param("id"), profile, services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project, nil))
}

// NewProjectForm renders the choices of the new project form.
func (h *ProjectHandler) NewProjectForm(c *gin.Context) {
	render(c, gin.H{
		"statuses":       models.ProjectStatuses(),
		"default_status": models.ProjectStatusActive,
	})
}
