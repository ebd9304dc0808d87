package db

import "gorm.io/gorm"

// NotDeleted is a GORM scope that filters out soft-deleted records. Use it
// with Unscoped queries or raw table access where the gorm.DeletedAt
// convention does not apply automatically.
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// ChecklistOrder orders checklist item queries for display: sort_order
// ascending with created_at as the tie breaker.
func ChecklistOrder() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC").Order("created_at ASC")
	}
}
