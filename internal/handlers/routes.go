package handlers

import (
	"net/http"

	"github.com/fazla-cloud/thunder-agency-platform/internal/access"
	"github.com/fazla-cloud/thunder-agency-platform/internal/middleware"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/services"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler of the application.
type Handlers struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Project   *ProjectHandler
	Task      *TaskHandler
	Settings  *SettingsHandler
	User      *UserHandler
	Profile   *ProfileHandler
}

// Register mounts the pages and the JSON API on r. Session middleware must
// already be installed.
func Register(r gin.IRouter, h Handlers, profiles *services.ProfileService, projects *services.ProjectService, tasks *services.TaskService) {
	r.GET(access.RootPath, h.Auth.Root)
	r.GET(access.LoginPath, h.Auth.LoginPage)
	r.GET(access.SignupPath, h.Auth.SignupPage)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", middleware.RequireAuth(), h.Auth.GetCurrentUser)
		}

		authed := api.Group("", middleware.RequireAuth(), middleware.LoadProfileAPI(profiles))
		{
			authed.POST("/projects", middleware.RequireRoleAPI(models.RoleClient), h.Project.CreateProject)
			authed.PATCH("/projects/:id", middleware.RequireRoleAPI(models.RoleClient, models.RoleAdmin), h.Project.UpdateProject)

			authed.POST("/tasks", middleware.RequireRoleAPI(models.RoleClient), h.Task.CreateTask)
			authed.POST("/tasks/brief", middleware.RequireRoleAPI(models.RoleClient), h.Task.DraftBrief)
			authed.PATCH("/tasks/:id", h.Task.UpdateTask)
			authed.POST("/tasks/:id/assign", middleware.RequireRoleAPI(models.RoleAdmin), h.Task.AssignTask)

			admin := authed.Group("", middleware.RequireRoleAPI(models.RoleAdmin))
			admin.POST("/settings/:kind", h.Settings.Create)
			admin.PATCH("/settings/:kind/:id", h.Settings.Update)
			admin.DELETE("/settings/:kind/:id", h.Settings.Delete)
			admin.GET("/users", h.User.ListUsers)
			admin.PATCH("/users/:id", h.User.UpdateUser)

			authed.PATCH("/profile", h.Profile.UpdateProfile)
			authed.POST("/profile/avatar", h.Profile.UploadAvatar)
		}
	}

	dash := r.Group(access.DashboardPath, middleware.RequireAuthPage(), middleware.LoadProfile(profiles))
	{
		dash.GET("", h.Dashboard.Home)
		dash.GET("/profile", h.Profile.Page)
		dash.GET("/tasks/:id",
			middleware.RequireAnyRole(models.RoleAdmin, models.RoleDesigner, models.RoleMarketer),
			middleware.RequireTaskAccess(tasks),
			h.Task.Detail,
		)

		admin := dash.Group("/admin", middleware.RequireRole(models.RoleAdmin))
		admin.GET("", h.Dashboard.Admin)
		admin.GET("/projects", h.Project.AdminList)
		admin.GET("/projects/:id", middleware.RequireProjectAccess(projects), h.Project.Detail)
		admin.GET("/tasks", h.Task.AdminList)
		admin.GET("/users", h.User.Page)
		admin.GET("/settings", h.Settings.Page)

		client := dash.Group("/client", middleware.RequireRole(models.RoleClient))
		client.GET("", h.Dashboard.Client)
		client.GET("/projects", h.Project.ClientList)
		client.GET("/projects/new", h.Project.NewProjectForm)
		client.GET("/projects/:id", middleware.RequireProjectAccess(projects), h.Project.Detail)
		client.GET("/projects/:id/tasks/new", middleware.RequireProjectAccess(projects), h.Project.NewTaskForm)
		client.GET("/tasks", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/dashboard/client/projects")
		})

		for _, role := range []models.Role{models.RoleDesigner, models.RoleMarketer} {
			work := dash.Group("/"+string(role), middleware.RequireRole(role))
			work.GET("", h.Dashboard.Assignee)
			work.GET("/tasks", h.Task.AssignedList)
		}
	}
}
