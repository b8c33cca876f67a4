package models

import (
	"time"

	"gorm.io/gorm"
)

// ContentType, Platform, Duration and Dimension are the admin-managed option
// lists offered when a task is created.

type ContentType struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *ContentType) BeforeCreate(tx *gorm.DB) error {
	assignID(&o.ID)
	return nil
}

type Platform struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *Platform) BeforeCreate(tx *gorm.DB) error {
	assignID(&o.ID)
	return nil
}

type Duration struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Label     string    `gorm:"type:varchar(100);not null" json:"label"`
	Seconds   int       `gorm:"not null;uniqueIndex" json:"seconds"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *Duration) BeforeCreate(tx *gorm.DB) error {
	assignID(&o.ID)
	return nil
}

type Dimension struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Label     string    `gorm:"type:varchar(100);not null" json:"label"`
	Value     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *Dimension) BeforeCreate(tx *gorm.DB) error {
	assignID(&o.ID)
	return nil
}
