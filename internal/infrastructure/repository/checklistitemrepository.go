// Package repository contains the GORM-backed implementations of the domain
// repository interfaces. Lookups report a miss as (nil, nil); soft-deleted
// rows are never returned.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"prio/internal/domain/checklist"
	"prio/internal/infrastructure/persistence/mappers"
	"prio/internal/infrastructure/persistence/models"
	dbutil "prio/internal/shared/db"
)

// GormChecklistItemRepository implements checklist.ItemRepository.
type GormChecklistItemRepository struct {
	db     *gorm.DB
	mapper *mappers.ChecklistItemMapper
}

// NewGormChecklistItemRepository creates a GormChecklistItemRepository.
func NewGormChecklistItemRepository(db *gorm.DB) *GormChecklistItemRepository {
	return &GormChecklistItemRepository{
		db:     db,
		mapper: mappers.NewChecklistItemMapper(),
	}
}

// Save inserts a new item and syncs store-generated state back into the
// entity: the numeric ID, authoritative timestamps, and the completion time
// the save hook may have stamped.
func (r *GormChecklistItemRepository) Save(ctx context.Context, item *checklist.Item) error {
	tx := dbutil.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(item)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("create checklist item: %w", err)
	}

	if err := item.SetID(model.ID); err != nil {
		return err
	}
	item.RecordPersistence(model.CreatedAt, model.UpdatedAt, model.CompletedAt)

	return nil
}

// Update writes the full row so cleared fields (assignee, completion stamps)
// persist, and the save hook re-checks the completion columns.
func (r *GormChecklistItemRepository) Update(ctx context.Context, item *checklist.Item) error {
	tx := dbutil.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(item)
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("update checklist item: %w", err)
	}

	item.RecordPersistence(model.CreatedAt, model.UpdatedAt, model.CompletedAt)

	return nil
}

// Delete soft-deletes the item.
func (r *GormChecklistItemRepository) Delete(ctx context.Context, itemID uint) error {
	tx := dbutil.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ChecklistItemModel{}, itemID)
	if result.Error != nil {
		return fmt.Errorf("delete checklist item: %w", result.Error)
	}

	return nil
}

// FindBySID finds an item by its public ID within an issue.
func (r *GormChecklistItemRepository) FindBySID(ctx context.Context, sid string, issueID uint) (*checklist.Item, error) {
	tx := dbutil.GetTxFromContext(ctx, r.db)

	var model models.ChecklistItemModel
	err := tx.Where("sid = ? AND issue_id = ?", sid, issueID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find checklist item: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// ListByIssue returns the issue's items ordered for display.
func (r *GormChecklistItemRepository) ListByIssue(ctx context.Context, issueID uint) ([]*checklist.Item, error) {
	tx := dbutil.GetTxFromContext(ctx, r.db)

	var modelList []*models.ChecklistItemModel
	err := tx.Where("issue_id = ?", issueID).
		Scopes(dbutil.ChecklistOrder()).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("list checklist items: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}
