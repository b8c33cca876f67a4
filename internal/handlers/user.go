package handlers

import (
	"net/http"

	"github.com/fazla-cloud/thunder-agency-platform/internal/dto"
	apierrors "github.com/fazla-cloud/thunder-agency-platform/internal/errors"
	"github.com/fazla-cloud/thunder-agency-platform/internal/middleware"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/repository"
	"github.com/fazla-cloud/thunder-agency-platform/internal/services"
	"github.com/fazla-cloud/thunder-agency-platform/internal/utils"
	"github.com/gin-gonic/gin"
)

// UserHandler lets admins review and manage accounts.
type UserHandler struct {
	profileService *services.ProfileService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(profileService *services.ProfileService) *UserHandler {
	return &UserHandler{profileService: profileService}
}

// Page renders one page of users.
func (h *UserHandler) Page(c *gin.Context) {
	resp, err := h.listUsers(c)
	if err != nil {
		logFetch(c, "users", err)
	}
	render(c, resp)
}

// ListUsers returns one page of users, optionally filtered by role.
func (h *UserHandler) ListUsers(c *gin.Context) {
	resp, err := h.listUsers(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) listUsers(c *gin.Context) (dto.UserListResponse, error) {
	page := utils.GetPaginationParams(c)

	var filter repository.ProfileFilter
	if role, ok := models.ParseRole(c.Query("role")); ok {
		filter.Role = &role
	}

	profiles, total, err := h.profileService.ListProfiles(filter, page)
	if err != nil {
		return dto.UserListResponse{Users: []dto.ProfileDTO{}, Pagination: page.Response(0)}, err
	}

	resp := dto.UserListResponse{
		Users:      make([]dto.ProfileDTO, 0, len(profiles)),
		Pagination: page.Response(total),
	}
	for _, p := range profiles {
		resp.Users = append(resp.Users, dto.ToProfileDTO(p))
	}
	return resp, nil
}

// UpdateUser changes another user's role or active flag.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	type UpdateUserRequest struct {
		Role     *string `json:"role"`
		IsActive *bool   `json:"is_active"`
	}

	actor, ok := middleware.GetProfile(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingFailed(c, err)
		return
	}

	input := services.AdminUpdateInput{IsActive: req.IsActive}
	if req.Role != nil {
		role := models.Role(*req.Role)
		input.Role = &role
	}

	profile, err := h.profileService.AdminUpdate(actor.ID, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*profile))
}
