package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkspaceModel is the workspaces table.
type WorkspaceModel struct {
	ID        uint           `gorm:"primarykey"`
	Slug      string         `gorm:"size:48;not null;uniqueIndex:uk_workspaces_slug"`
	Name      string         `gorm:"size:255;not null"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index:idx_workspaces_deleted_at"`
}

// TableName specifies the table name.
func (WorkspaceModel) TableName() string {
	return "workspaces"
}
