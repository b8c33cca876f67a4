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

// TaskHandler serves task pages and mutations.
type TaskHandler struct {
	taskService    *services.TaskService
	profileService *services.ProfileService
	loc            *time.Location
}

// NewTaskHandler creates a new TaskHandler. Date filters are evaluated in loc.
func NewTaskHandler(taskService *services.TaskService, profileService *services.ProfileService, loc *time.Location) *TaskHandler {
	return &TaskHandler{
		taskService:    taskService,
		profileService: profileService,
		loc:            loc,
	}
}

// AdminList renders every task with status tabs and filters.
func (h *TaskHandler) AdminList(c *gin.Context) {
	h.list(c, services.ListTasksInput{})
}

// AssignedList renders the tasks assigned to the viewer.
func (h *TaskHandler) AssignedList(c *gin.Context) {
	profile := mustProfile(c)
	if profile == nil {
		return
	}
	h.list(c, services.ListTasksInput{AssignedTo: &profile.ID})
}

func (h *TaskHandler) list(c *gin.Context, input services.ListTasksInput) {
	params := query.ParseListParams(c.Request.URL.Query())

	tasks, err := h.taskService.ListTasks(input)
	if err != nil {
		logFetch(c, "tasks", err)
		tasks = []models.Task{}
	}

	people := h.profileService.Profiles(dto.PeopleIDs(tasks))
	filtered := query.Apply(tasks, params, h.loc, query.TaskRecord)

	render(c, dto.TaskListResponse{
		Tasks:        dto.ToTaskDTOs(filtered, people),
		Filters:      params,
		StatusCounts: query.StatusTabCounts(tasks, query.TaskStatusKeys(), query.TaskStatus),
	})
}

// Detail renders the task loaded by RequireTaskAccess. Admins also get the
// people the task can be assigned to.
func (h *TaskHandler) Detail(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.NotFound(c, "Task not found")
		return
	}
	profile := mustProfile(c)
	if profile == nil {
		return
	}

	people := h.profileService.Profiles(dto.PeopleIDs([]models.Task{*task}))
	resp := dto.TaskDetailResponse{Task: dto.ToTaskDTO(*task, people)}

	if profile.Role == models.RoleAdmin {
		assignees, err := h.profileService.Assignees()
		if err != nil {
			logFetch(c, "assignees", err)
		}
		resp.Assignees = make([]dto.PersonDTO, 0, len(assignees))
		for _, a := range assignees {
			resp.Assignees = append(resp.Assignees, dto.PersonDTO{ID: a.ID, FullName: a.FullName, AvatarURL: a.AvatarURL})
		}
	}

	render(c, resp)
}

// CreateTask creates a task in one of the calling client's projects.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		ProjectID       string  `json:"project_id" binding:"required"`
		Title           string  `json:"title" binding:"required,max=200"`
		ContentType     string  `json:"content_type" binding:"required"`
		Platform        string  `json:"platform" binding:"required"`
		DurationSeconds *int    `json:"duration_seconds"`
		Dimensions      *string `json:"dimensions"`
		Brief           string  `json:"brief" binding:"required"`
		Status          string  `json:"status"`
	}

	profile, ok := middleware.GetProfile(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingFailed(c, err)
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		ClientID:        profile.ID,
		ProjectID:       req.ProjectID,
		Title:           req.Title,
		ContentType:     req.ContentType,
		Platform:        req.Platform,
		DurationSeconds: req.DurationSeconds,
		Dimensions:      req.Dimensions,
		Brief:           req.Brief,
		Status:          models.TaskStatus(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task, nil))
}

// UpdateTask edits a task. Assignees may only change its status.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	type UpdateTaskRequest struct {
		Title           *string `json:"title" binding:"omitempty,max=200"`
		ContentType     *string `json:"content_type"`
		Platform        *string `json:"platform"`
		DurationSeconds *int    `json:"duration_seconds"`
		ClearDuration   bool    `json:"clear_duration"`
		Dimensions      *string `json:"dimensions"`
		Brief           *string `json:"brief"`
		Status          *string `json:"status"`
	}

	profile, ok := middleware.GetProfile(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingFailed(c, err)
		return
	}

	input := services.UpdateTaskInput{
		Title:           req.Title,
		ContentType:     req.ContentType,
		Platform:        req.Platform,
		DurationSeconds: req.DurationSeconds,
		ClearDuration:   req.ClearDuration,
		Dimensions:      req.Dimensions,
		Brief:           req.Brief,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		input.Status = &status
	}

	task, err := h.taskService.UpdateTask(c.Param("id"), profile, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task, nil))
}

// AssignTask hands a task to a designer or marketer.
func (h *TaskHandler) AssignTask(c *gin.Context) {
	type AssignTaskRequest struct {
		AssignedTo string `json:"assigned_to" binding:"required"`
	}

	var req AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingFailed(c, err)
		return
	}

	task, err := h.taskService.AssignTask(c.Param("id"), req.AssignedTo)
	if err != nil {
		respondError(c, err)
		return
	}

	people := h.profileService.Profiles(dto.PeopleIDs([]models.Task{*task}))
	c.JSON(http.StatusOK, dto.ToTaskDTO(*task, people))
}

// DraftBrief returns an assistant-written brief for the task being created.
func (h *TaskHandler) DraftBrief(c *gin.Context) {
	type DraftBriefRequest struct {
		Title           string  `json:"title" binding:"required"`
		ContentType     string  `json:"content_type"`
		Platform        string  `json:"platform"`
		DurationSeconds *int    `json:"duration_seconds"`
		Dimensions      *string `json:"dimensions"`
		Notes           string  `json:"notes" binding:"max=2000"`
	}

	var req DraftBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingFailed(c, err)
		return
	}

	brief, err := h.taskService.DraftBrief(c.Request.Context(), services.BriefRequest{
		Title:           req.Title,
		ContentType:     req.ContentType,
		Platform:        req.Platform,
		DurationSeconds: req.DurationSeconds,
		Dimensions:      req.Dimensions,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"brief": brief})
}
