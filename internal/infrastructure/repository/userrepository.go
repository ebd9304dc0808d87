package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"prio/internal/domain/user"
	"prio/internal/infrastructure/persistence/mappers"
	"prio/internal/infrastructure/persistence/models"
	dbutil "prio/internal/shared/db"
)

// GormUserRepository implements user.Repository.
type GormUserRepository struct {
	db     *gorm.DB
	mapper *mappers.UserMapper
}

// NewGormUserRepository creates a GormUserRepository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

// FindBySID finds a user by public ID.
func (r *GormUserRepository) FindBySID(ctx context.Context, sid string) (*user.User, error) {
	tx := dbutil.GetTxFromContext(ctx, r.db)

	var model models.UserModel
	err := tx.Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindByIDs batch-loads users by numeric ID. Missing IDs are simply absent
// from the result.
func (r *GormUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	tx := dbutil.GetTxFromContext(ctx, r.db)

	var modelList []*models.UserModel
	if err := tx.Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	users := make([]*user.User, 0, len(modelList))
	for _, model := range modelList {
		u, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
