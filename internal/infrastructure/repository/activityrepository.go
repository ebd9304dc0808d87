package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"prio/internal/domain/activity"
	"prio/internal/infrastructure/persistence/models"
	dbutil "prio/internal/shared/db"
)

// GormActivityRepository persists delivered activity events.
type GormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a GormActivityRepository.
func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

// Save appends an activity row. The event ID is unique, so redelivery of the
// same event fails instead of duplicating history.
func (r *GormActivityRepository) Save(ctx context.Context, event activity.Event) error {
	tx := dbutil.GetTxFromContext(ctx, r.db)

	model := &models.ActivityModel{
		EventID:         event.ID,
		Type:            event.Type,
		RequestedData:   event.RequestedData,
		ActorSID:        event.ActorSID,
		IssueSID:        event.IssueSID,
		ProjectSID:      event.ProjectSID,
		CurrentInstance: event.CurrentInstance,
		Epoch:           event.Epoch,
		Notification:    event.Notification,
		Origin:          event.Origin,
	}

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}

	return nil
}

// ListByIssue returns an issue's activity rows, newest first.
func (r *GormActivityRepository) ListByIssue(ctx context.Context, issueSID string) ([]*models.ActivityModel, error) {
	tx := dbutil.GetTxFromContext(ctx, r.db)

	var rows []*models.ActivityModel
	err := tx.Where("issue_sid = ?", issueSID).
		Order("epoch DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list activity events: %w", err)
	}

	return rows, nil
}
