package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusDrafts     TaskStatus = "drafts"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusArchived   TaskStatus = "archived"
)

// AllTaskStatuses returns the task lifecycle in bucket order.
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusDrafts, TaskStatusInProgress, TaskStatusCompleted, TaskStatusArchived}
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusDrafts, TaskStatusInProgress, TaskStatusCompleted, TaskStatusArchived:
		return true
	}
	return false
}

type Task struct {
	ID              string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProjectID       string     `gorm:"type:varchar(36);not null;index" json:"project_id"`
	ClientID        string     `gorm:"type:varchar(36);not null;index" json:"client_id"`
	AssignedTo      *string    `gorm:"type:varchar(36);index" json:"assigned_to"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	ContentType     string     `gorm:"type:varchar(100);not null" json:"content_type"`
	Platform        string     `gorm:"type:varchar(100);not null" json:"platform"`
	DurationSeconds *int       `json:"duration_seconds"`
	Dimensions      *string    `gorm:"type:varchar(100)" json:"dimensions"`
	Brief           string     `gorm:"type:text;not null" json:"brief"`
	Status          TaskStatus `gorm:"type:varchar(20);not null;default:'drafts';index" json:"status"`
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	assignID(&t.ID)
	if t.Status == "" {
		t.Status = TaskStatusDrafts
	}
	return nil
}
