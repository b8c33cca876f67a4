package handlers

import (
	"net/http"

	apierrors "github.com/fazla-cloud/thunder-agency-platform/internal/errors"
	"github.com/fazla-cloud/thunder-agency-platform/internal/services"
	"github.com/gin-gonic/gin"
)

// Option kinds as they appear in /api/settings/:kind.
const (
	KindContentTypes = "content-types"
	KindPlatforms    = "platforms"
	KindDurations    = "durations"
	KindDimensions   = "dimensions"
)

// SettingsHandler maintains the option lists offered on the task form.
type SettingsHandler struct {
	optionService *services.OptionService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(optionService *services.OptionService) *SettingsHandler {
	return &SettingsHandler{optionService: optionService}
}

// OptionRequest carries the fields of any option kind. Content types and
// platforms use Name, durations Label and Seconds, dimensions Label and
// Value.
type OptionRequest struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Seconds int    `json:"seconds"`
}

// Page renders the four option lists.
func (h *SettingsHandler) Page(c *gin.Context) {
	render(c, h.optionService.LoadAll())
}

// Create adds an option of the kind named in the path.
func (h *SettingsHandler) Create(c *gin.Context) {
	var req OptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingFailed(c, err)
		return
	}

	var (
		item any
		err  error
	)
	switch c.Param("kind") {
	case KindContentTypes:
		item, err = h.optionService.CreateContentType(req.Name)
	case KindPlatforms:
		item, err = h.optionService.CreatePlatform(req.Name)
	case KindDurations:
		item, err = h.optionService.CreateDuration(req.Label, req.Seconds)
	case KindDimensions:
		item, err = h.optionService.CreateDimension(req.Label, req.Value)
	default:
		apierrors.NotFound(c, "Unknown option kind")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Update edits an option of the kind named in the path.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req OptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingFailed(c, err)
		return
	}

	id := c.Param("id")
	var (
		item any
		err  error
	)
	switch c.Param("kind") {
	case KindContentTypes:
		item, err = h.optionService.UpdateContentType(id, req.Name)
	case KindPlatforms:
		item, err = h.optionService.UpdatePlatform(id, req.Name)
	case KindDurations:
		item, err = h.optionService.UpdateDuration(id, req.Label, req.Seconds)
	case KindDimensions:
		item, err = h.optionService.UpdateDimension(id, req.Label, req.Value)
	default:
		apierrors.NotFound(c, "Unknown option kind")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete removes an option of the kind named in the path.
func (h *SettingsHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	var err error
	switch c.Param("kind") {
	case KindContentTypes:
		err = h.optionService.DeleteContentType(id)
	case KindPlatforms:
		err = h.optionService.DeletePlatform(id)
	case KindDurations:
		err = h.optionService.DeleteDuration(id)
	case KindDimensions:
		err = h.optionService.DeleteDimension(id)
	default:
		apierrors.NotFound(c, "Unknown option kind")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
