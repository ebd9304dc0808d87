// Package mappers converts between domain entities and persistence models.
package mappers

import (
	"prio/internal/domain/checklist"
	"prio/internal/domain/user"
	"prio/internal/infrastructure/persistence/models"
)

// ChecklistItemMapper converts checklist items.
type ChecklistItemMapper struct{}

// NewChecklistItemMapper creates a ChecklistItemMapper.
func NewChecklistItemMapper() *ChecklistItemMapper {
	return &ChecklistItemMapper{}
}

// ToModel converts a domain item to its persistence model.
func (m *ChecklistItemMapper) ToModel(item *checklist.Item) *models.ChecklistItemModel {
	return &models.ChecklistItemModel{
		ID:          item.ID(),
		SID:         item.SID(),
		IssueID:     item.IssueID(),
		ProjectID:   item.ProjectID(),
		WorkspaceID: item.WorkspaceID(),
		Name:        item.Name(),
		IsCompleted: item.IsCompleted(),
		CompletedAt: item.CompletedAt(),
		CompletedBy: item.CompletedBy(),
		AssigneeID:  item.AssigneeID(),
		SortOrder:   item.SortOrder(),
		CreatedBy:   item.CreatedBy(),
		UpdatedBy:   item.UpdatedBy(),
		CreatedAt:   item.CreatedAt(),
		UpdatedAt:   item.UpdatedAt(),
	}
}

// ToDomain converts a persistence model to a domain item.
func (m *ChecklistItemMapper) ToDomain(model *models.ChecklistItemModel) (*checklist.Item, error) {
	return checklist.ReconstructItem(
		model.ID,
		model.SID,
		model.IssueID,
		model.ProjectID,
		model.WorkspaceID,
		model.Name,
		model.IsCompleted,
		model.CompletedAt,
		model.CompletedBy,
		model.AssigneeID,
		model.SortOrder,
		model.CreatedBy,
		model.UpdatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToDomainList converts a slice of models.
func (m *ChecklistItemMapper) ToDomainList(modelList []*models.ChecklistItemModel) ([]*checklist.Item, error) {
	items := make([]*checklist.Item, 0, len(modelList))
	for _, model := range modelList {
		item, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// UserMapper converts user summaries.
type UserMapper struct{}

// NewUserMapper creates a UserMapper.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToDomain converts a persistence model to a user summary.
func (m *UserMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.SID,
		model.Email,
		model.DisplayName,
		model.FirstName,
		model.LastName,
		model.AvatarURL,
	)
}
