package handlers

import (
	"net/http"

	"github.com/fazla-cloud/thunder-agency-platform/internal/constants"
	"github.com/fazla-cloud/thunder-agency-platform/internal/dto"
	apierrors "github.com/fazla-cloud/thunder-agency-platform/internal/errors"
	"github.com/fazla-cloud/thunder-agency-platform/internal/middleware"
	"github.com/fazla-cloud/thunder-agency-platform/internal/services"
	"github.com/fazla-cloud/thunder-agency-platform/internal/storage"
	"github.com/gin-gonic/gin"
)

// AvatarField is the multipart field holding an avatar upload.
const AvatarField = "avatar"

// ProfileHandler serves the viewer's own profile.
type ProfileHandler struct {
	profileService *services.ProfileService
	avatars        storage.AvatarStore
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *services.ProfileService, avatars storage.AvatarStore) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		avatars:        avatars,
	}
}

// Page renders the viewer's profile with their login email.
func (h *ProfileHandler) Page(c *gin.Context) {
	profile := mustProfile(c)
	if profile == nil {
		return
	}

	data := dto.ToProfileDTO(*profile)
	email, err := h.profileService.Email(profile.ID)
	if err != nil {
		logFetch(c, "email", err)
	}
	data.Email = email

	render(c, data)
}

// UpdateProfile edits the viewer's name and title.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	type UpdateProfileRequest struct {
		FullName *string `json:"full_name" binding:"omitempty,max=100"`
		Title    *string `json:"title" binding:"omitempty,max=100"`
	}

	profile, ok := middleware.GetProfile(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingFailed(c, err)
		return
	}

	updated, err := h.profileService.UpdateProfile(profile.ID, services.UpdateProfileInput{
		FullName: req.FullName,
		Title:    req.Title,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*updated))
}

// UploadAvatar stores a new avatar image for the viewer.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	profile, ok := middleware.GetProfile(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, constants.MaxAvatarBytes+1<<20)
	fileHeader, err := c.FormFile(AvatarField)
	if err != nil {
		apierrors.BadRequest(c, "An avatar image is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		apierrors.BadRequest(c, "Failed to read avatar")
		return
	}
	defer file.Close()

	url, err := h.avatars.Save(profile.ID, file)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.profileService.SetAvatar(profile.ID, url)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*updated))
}
