// Package models defines the GORM persistence models.
package models

import (
	"time"

	"gorm.io/gorm"

	"prio/internal/shared/biztime"
)

// ChecklistItemModel is the checklist_items table.
type ChecklistItemModel struct {
	ID          uint           `gorm:"primarykey"`
	SID         string         `gorm:"column:sid;size:64;not null;uniqueIndex:uk_checklist_items_sid"`
	IssueID     uint           `gorm:"not null;index:idx_checklist_items_issue"`
	ProjectID   uint           `gorm:"not null;index:idx_checklist_items_project"`
	WorkspaceID uint           `gorm:"not null"`
	Name        string         `gorm:"size:500;not null"`
	IsCompleted bool           `gorm:"not null;default:false"`
	CompletedAt *time.Time
	CompletedBy *uint
	AssigneeID  *uint          `gorm:"index:idx_checklist_items_assignee"`
	SortOrder   float64        `gorm:"not null;default:65535"`
	CreatedBy   uint           `gorm:"not null"`
	UpdatedBy   uint           `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index:idx_checklist_items_deleted_at"`
}

// TableName specifies the table name.
func (ChecklistItemModel) TableName() string {
	return "checklist_items"
}

// BeforeSave keeps the completion columns consistent no matter which path
// wrote the row: a completed item always has a completion time, and an open
// item never carries completion stamps.
func (m *ChecklistItemModel) BeforeSave(tx *gorm.DB) error {
	if m.IsCompleted && m.CompletedAt == nil {
		now := biztime.NowUTC()
		m.CompletedAt = &now
	}
	if !m.IsCompleted {
		m.CompletedAt = nil
		m.CompletedBy = nil
	}
	return nil
}
