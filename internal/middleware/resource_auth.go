package middleware

import (
	"errors"

	"github.com/fazla-cloud/thunder-agency-platform/internal/access"
	apierrors "github.com/fazla-cloud/thunder-agency-platform/internal/errors"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/services"
	"github.com/gin-gonic/gin"
)

const (
	contextKeyTask    = "task"
	contextKeyProject = "project"
)

// TaskFinder loads a task on behalf of a viewer.
type TaskFinder interface {
	GetTaskForViewer(id string, viewer *models.Profile) (*models.Task, error)
}

// ProjectFinder loads a project on behalf of a viewer.
type ProjectFinder interface {
	GetProjectForViewer(id string, viewer *models.Profile) (*models.Project, error)
}

// RequireTaskAccess loads the task named by the :id parameter. Viewers who
// may not see it are sent to their own dashboard.
func RequireTaskAccess(finder TaskFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := GetProfile(c)
		if !ok {
			apply(c, access.RequireRole(nil, ""))
			return
		}

		task, err := finder.GetTaskForViewer(c.Param("id"), profile)
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
			c.Abort()
			return
		case errors.Is(err, services.ErrTaskPermissionDenied):
			apply(c, access.Decision{Outcome: access.Redirect, Location: access.DefaultRedirect(profile.Role)})
			return
		case err != nil:
			apierrors.InternalError(c, "Failed to load task")
			c.Abort()
			return
		}

		c.Set(contextKeyTask, task)
		c.Next()
	}
}

// RequireProjectAccess loads the project named by the :id parameter. Viewers
// who do not own it are sent to their own dashboard.
func RequireProjectAccess(finder ProjectFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := GetProfile(c)
		if !ok {
			apply(c, access.RequireRole(nil, ""))
			return
		}

		project, err := finder.GetProjectForViewer(c.Param("id"), profile)
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			apierrors.NotFound(c, "Project not found")
			c.Abort()
			return
		case errors.Is(err, services.ErrProjectPermissionDenied):
			apply(c, access.Decision{Outcome: access.Redirect, Location: access.DefaultRedirect(profile.Role)})
			return
		case err != nil:
			apierrors.InternalError(c, "Failed to load project")
			c.Abort()
			return
		}

		c.Set(contextKeyProject, project)
		c.Next()
	}
}

// GetTask retrieves the task loaded by RequireTaskAccess
func GetTask(c *gin.Context) (*models.Task, bool) {
	v, exists := c.Get(contextKeyTask)
	if !exists {
		return nil, false
	}
	task, ok := v.(*models.Task)
	return task, ok
}

// GetProject retrieves the project loaded by RequireProjectAccess
func GetProject(c *gin.Context) (*models.Project, bool) {
	v, exists := c.Get(contextKeyProject)
	if !exists {
		return nil, false
	}
	project, ok := v.(*models.Project)
	return project, ok
}
