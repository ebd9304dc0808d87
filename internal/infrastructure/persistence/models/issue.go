package models

import (
	"time"

	"gorm.io/gorm"
)

// IssueModel is the issues table, reduced to what checklist scoping needs.
type IssueModel struct {
	ID          uint           `gorm:"primarykey"`
	SID         string         `gorm:"column:sid;size:64;not null;uniqueIndex:uk_issues_sid"`
	ProjectID   uint           `gorm:"not null;index:idx_issues_project"`
	WorkspaceID uint           `gorm:"not null"`
	SequenceID  int            `gorm:"not null;default:0"`
	Name        string         `gorm:"size:255;not null"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index:idx_issues_deleted_at"`
}

// TableName specifies the table name.
func (IssueModel) TableName() string {
	return "issues"
}
