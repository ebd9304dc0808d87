package models

import (
	"time"

	"gorm.io/gorm"
)

// UserModel is the users table.
type UserModel struct {
	ID          uint           `gorm:"primarykey"`
	SID         string         `gorm:"column:sid;size:64;not null;uniqueIndex:uk_users_sid"`
	Email       string         `gorm:"size:255;not null;uniqueIndex:uk_users_email"`
	DisplayName string         `gorm:"size:255;not null"`
	FirstName   string         `gorm:"size:255"`
	LastName    string         `gorm:"size:255"`
	AvatarURL   string         `gorm:"size:512"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index:idx_users_deleted_at"`
}

// TableName specifies the table name.
func (UserModel) TableName() string {
	return "users"
}
