package models

import "time"

// ActivityModel is the issue_activities table, the durable record behind the
// activity event stream. Rows are append-only.
type ActivityModel struct {
	ID              uint      `gorm:"primarykey"`
	EventID         string    `gorm:"size:64;not null;uniqueIndex:uk_issue_activities_event"`
	Type            string    `gorm:"size:64;not null;index:idx_issue_activities_type"`
	RequestedData   string    `gorm:"type:text"`
	ActorSID        string    `gorm:"column:actor_sid;size:64"`
	IssueSID        string    `gorm:"column:issue_sid;size:64;not null;index:idx_issue_activities_issue"`
	ProjectSID      string    `gorm:"column:project_sid;size:64;not null"`
	CurrentInstance string    `gorm:"type:text"`
	Epoch           int64     `gorm:"not null"`
	Notification    bool      `gorm:"not null;default:false"`
	Origin          string    `gorm:"size:255"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name.
func (ActivityModel) TableName() string {
	return "issue_activities"
}
