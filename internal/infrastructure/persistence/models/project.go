package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectModel is the projects table.
type ProjectModel struct {
	ID          uint           `gorm:"primarykey"`
	SID         string         `gorm:"column:sid;size:64;not null;uniqueIndex:uk_projects_sid"`
	WorkspaceID uint           `gorm:"not null;index:idx_projects_workspace"`
	Name        string         `gorm:"size:255;not null"`
	Identifier  string         `gorm:"size:12;not null"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index:idx_projects_deleted_at"`
}

// TableName specifies the table name.
func (ProjectModel) TableName() string {
	return "projects"
}
