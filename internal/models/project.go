package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusArchived  = "archived"
)

// ProjectStatuses returns the accepted project statuses in display order.
func ProjectStatuses() []string {
	return []string{ProjectStatusActive, ProjectStatusCompleted, ProjectStatusArchived}
}

type Project struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ClientID    string    `gorm:"type:varchar(36);not null;index" json:"client_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Status      string    `gorm:"type:varchar(32);not null;default:'active'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	if p.Status == "" {
		p.Status = ProjectStatusActive
	}
	return nil
}
