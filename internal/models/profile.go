package models

import (
	"strings"
	"time"
)

// Role is the single role held by a profile.
type Role string

const (
	RoleClient   Role = "client"
	RoleAdmin    Role = "admin"
	RoleDesigner Role = "designer"
	RoleMarketer Role = "marketer"
)

// AllRoles returns every role in display order.
func AllRoles() []Role {
	return []Role{RoleClient, RoleAdmin, RoleDesigner, RoleMarketer}
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleAdmin, RoleDesigner, RoleMarketer:
		return true
	}
	return false
}

// IsAssignee reports whether tasks can be assigned to holders of r.
func (r Role) IsAssignee() bool {
	return r == RoleDesigner || r == RoleMarketer
}

// ParseRole normalizes s and reports whether it names a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Profile holds the application-level identity of a user. Its ID equals the
// owning User's ID.
type Profile struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'client';index" json:"role"`
	FullName  *string   `gorm:"type:varchar(255)" json:"full_name"`
	Title     *string   `gorm:"type:varchar(255)" json:"title"`
	AvatarURL *string   `gorm:"type:varchar(512)" json:"avatar_url"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the full name, or fallback when none is set.
func (p *Profile) DisplayName(fallback string) string {
	if p == nil || p.FullName == nil || strings.TrimSpace(*p.FullName) == "" {
		return fallback
	}
	return *p.FullName
}
