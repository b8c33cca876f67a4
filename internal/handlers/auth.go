package handlers

import (
	"net/http"

	"github.com/fazla-cloud/thunder-agency-platform/internal/access"
	"github.com/fazla-cloud/thunder-agency-platform/internal/constants"
	"github.com/fazla-cloud/thunder-agency-platform/internal/dto"
	apierrors "github.com/fazla-cloud/thunder-agency-platform/internal/errors"
	"github.com/fazla-cloud/thunder-agency-platform/internal/middleware"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService    *services.AuthService
	profileService *services.ProfileService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, profileService *services.ProfileService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		profileService: profileService,
	}
}

// SessionResponse is returned after signup and login.
type SessionResponse struct {
	Profile    dto.ProfileDTO `json:"profile"`
	RedirectTo string         `json:"redirect_to"`
}

// Signup registers a new client and signs them in.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		FullName string `json:"full_name" binding:"required"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingFailed(c, err)
		return
	}

	user, err := h.authService.Signup(services.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.startSession(c, http.StatusCreated, user, "")
}

// Login authenticates a user and initializes the session. redirect_to is
// next when the user's role may open it, else their dashboard.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Next     string `json:"next"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingFailed(c, err)
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.startSession(c, http.StatusOK, user, req.Next)
}

func (h *AuthHandler) startSession(c *gin.Context, status int, user *models.User, next string) {
	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	profile, err := h.profileService.GetProfile(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	profileDTO := dto.ToProfileDTO(*profile)
	profileDTO.Email = user.Email
	c.JSON(status, SessionResponse{
		Profile:    profileDTO,
		RedirectTo: access.SafeNext(profile.Role, next),
	})
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Logged out successfully",
		"redirect_to": access.LoginPath,
	})
}

// GetCurrentUser returns the authenticated user's profile.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	profileDTO := dto.ToProfileDTO(*profile)
	profileDTO.Email = user.Email
	c.JSON(http.StatusOK, profileDTO)
}

// LoginPage describes the login form. Signed-in users are sent on to their
// dashboard.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.anonymousPage(c, "login")
}

// SignupPage describes the signup form.
func (h *AuthHandler) SignupPage(c *gin.Context) {
	h.anonymousPage(c, "signup")
}

func (h *AuthHandler) anonymousPage(c *gin.Context, form string) {
	if userID, ok := middleware.SessionUserID(c); ok {
		if profile, ok := h.profileService.Resolve(userID); ok && profile.IsActive {
			c.Redirect(http.StatusFound, access.DefaultRedirect(profile.Role))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"form":       form,
		"redirected": c.Query(access.RedirectedParam) == "true",
		"next":       c.Query("next"),
	})
}

// Root sends visitors to their dashboard, or to the login page when they
// have no profile.
func (h *AuthHandler) Root(c *gin.Context) {
	var role models.Role
	if userID, ok := middleware.SessionUserID(c); ok {
		if profile, ok := h.profileService.Resolve(userID); ok && profile.IsActive {
			role = profile.Role
		}
	}
	c.Redirect(http.StatusFound, access.DefaultRedirect(role))
}
