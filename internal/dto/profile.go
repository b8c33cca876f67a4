package dto

import (
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/access"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/utils"
)

// ProfileDTO represents a profile in API responses
type ProfileDTO struct {
	ID        string      `json:"id"`
	Email     string      `json:"email,omitempty"`
	Role      models.Role `json:"role"`
	FullName  *string     `json:"full_name"`
	Title     *string     `json:"title"`
	AvatarURL *string     `json:"avatar_url"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
}

// PersonDTO is the short form of a profile shown next to tasks and projects
type PersonDTO struct {
	ID        string  `json:"id"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

// UserListResponse represents a paginated list of profiles
type UserListResponse struct {
	Users      []ProfileDTO             `json:"users"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// PageDTO wraps every dashboard view model with the viewer and sidebar
type PageDTO struct {
	Viewer ProfileDTO       `json:"viewer"`
	Nav    []access.NavItem `json:"nav"`
	Data   any              `json:"data"`
}

// ToProfileDTO converts a Profile model to ProfileDTO
func ToProfileDTO(profile models.Profile) ProfileDTO {
	return ProfileDTO{
		ID:        profile.ID,
		Role:      profile.Role,
		FullName:  profile.FullName,
		Title:     profile.Title,
		AvatarURL: profile.AvatarURL,
		IsActive:  profile.IsActive,
		CreatedAt: profile.CreatedAt,
	}
}

// ToPersonDTO returns the short form of the profile with id, or nil when it
// is not in people.
func ToPersonDTO(id *string, people map[string]models.Profile) *PersonDTO {
	if id == nil {
		return nil
	}
	p, ok := people[*id]
	if !ok {
		return nil
	}
	return &PersonDTO{ID: p.ID, FullName: p.FullName, AvatarURL: p.AvatarURL}
}

// ToPageDTO builds the page envelope for viewer
func ToPageDTO(viewer models.Profile, data any) PageDTO {
	return PageDTO{
		Viewer: ToProfileDTO(viewer),
		Nav:    access.NavItems(viewer.Role),
		Data:   data,
	}
}
