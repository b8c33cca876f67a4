package handlers

import (
	"net/http"

	"github.com/fazla-cloud/thunder-agency-platform/internal/access"
	"github.com/fazla-cloud/thunder-agency-platform/internal/dto"
	"github.com/fazla-cloud/thunder-agency-platform/internal/middleware"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/services"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the per-role home pages.
type DashboardHandler struct {
	dashboards *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboards *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// Home redirects /dashboard to the viewer's own dashboard.
func (h *DashboardHandler) Home(c *gin.Context) {
	profile := mustProfile(c)
	if profile == nil {
		return
	}
	c.Redirect(http.StatusFound, access.DefaultRedirect(profile.Role))
}

// Admin renders totals and charts over every task.
func (h *DashboardHandler) Admin(c *gin.Context) {
	render(c, h.dashboards.Admin())
}

// Client renders totals and charts over the viewer's own tasks.
func (h *DashboardHandler) Client(c *gin.Context) {
	profile := mustProfile(c)
	if profile == nil {
		return
	}
	render(c, h.dashboards.Client(profile.ID))
}

// Assignee renders totals and charts over the tasks assigned to the viewer.
func (h *DashboardHandler) Assignee(c *gin.Context) {
	profile := mustProfile(c)
	if profile == nil {
		return
	}
	render(c, h.dashboards.Assignee(profile.ID))
}

// mustProfile returns the viewer loaded by the layout middleware, redirecting
// to the login page when there is none.
func mustProfile(c *gin.Context) *models.Profile {
	profile, ok := middleware.GetProfile(c)
	if !ok {
		c.Redirect(http.StatusFound, access.LoginPath)
		c.Abort()
		return nil
	}
	return profile
}

// render writes data inside the page envelope of the current viewer.
func render(c *gin.Context, data any) {
	profile := mustProfile(c)
	if profile == nil {
		return
	}
	c.JSON(http.StatusOK, dto.ToPageDTO(*profile, data))
}
