package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fazla-cloud/thunder-agency-platform/internal/constants"
	apierrors "github.com/fazla-cloud/thunder-agency-platform/internal/errors"
	"github.com/fazla-cloud/thunder-agency-platform/internal/services"
	"github.com/fazla-cloud/thunder-agency-platform/internal/storage"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the JSON error envelope.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrFullNameTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Full name must be at least %d characters", constants.MinFullNameLength))
	case errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrProjectNameRequired),
		errors.Is(err, services.ErrInvalidProjectStatus),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrContentTypeRequired),
		errors.Is(err, services.ErrPlatformRequired),
		errors.Is(err, services.ErrBriefRequired),
		errors.Is(err, services.ErrInvalidDuration),
		errors.Is(err, services.ErrInvalidTaskStatus),
		errors.Is(err, services.ErrAssigneeRequired),
		errors.Is(err, services.ErrInvalidTaskAssignee),
		errors.Is(err, services.ErrOptionNameRequired),
		errors.Is(err, services.ErrOptionLabelRequired),
		errors.Is(err, storage.ErrAvatarEmpty),
		errors.Is(err, storage.ErrAvatarTooLarge),
		errors.Is(err, storage.ErrUnsupportedImage):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrOptionExists):
		apierrors.AlreadyExists(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrAccountDisabled):
		apierrors.AccountDisabled(c)
	case errors.Is(err, services.ErrTaskPermissionDenied),
		errors.Is(err, services.ErrProjectPermissionDenied),
		errors.Is(err, services.ErrCannotModifySelf):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrOptionNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAIServiceNotConfigured):
		apierrors.ServiceUnavailable(c, err.Error())
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		apierrors.InternalError(c, "Internal server error")
	}
}

// logFetch records a page read that failed and was rendered as empty.
func logFetch(c *gin.Context, what string, err error) {
	slog.Warn("page fetch failed", "path", c.Request.URL.Path, "fetch", what, "error", err)
}
