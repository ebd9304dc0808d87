package usecases

import (
	"context"
	"fmt"

	"prio/internal/application/checklist/dto"
	"prio/internal/domain/checklist"
	"prio/internal/domain/issue"
	"prio/internal/domain/user"
	apperrors "prio/internal/shared/errors"
	"prio/internal/shared/logger"
)

// GetItemCommand identifies a single checklist item within its issue scope.
type GetItemCommand struct {
	WorkspaceSlug string
	ProjectSID    string
	IssueSID      string
	ItemSID       string
}

// GetItemResult carries the item view.
type GetItemResult struct {
	Item dto.ChecklistItemDTO
}

// GetItemUseCase fetches a single checklist item.
type GetItemUseCase struct {
	items  checklist.ItemRepository
	issues issue.Repository
	users  user.Repository
	logger logger.Interface
}

// NewGetItemUseCase creates a GetItemUseCase.
func NewGetItemUseCase(
	items checklist.ItemRepository,
	issues issue.Repository,
	users user.Repository,
	logger logger.Interface,
) *GetItemUseCase {
	return &GetItemUseCase{
		items:  items,
		issues: issues,
		users:  users,
		logger: logger,
	}
}

// Execute fetches the item.
func (uc *GetItemUseCase) Execute(ctx context.Context, cmd GetItemCommand) (*GetItemResult, error) {
	parent, err := resolveIssue(ctx, uc.issues, cmd.IssueSID, cmd.ProjectSID, cmd.WorkspaceSlug)
	if err != nil {
		return nil, err
	}

	item, err := uc.items.FindBySID(ctx, cmd.ItemSID, parent.ID())
	if err != nil {
		uc.logger.Errorw("failed to find checklist item", "item_sid", cmd.ItemSID, "error", err)
		return nil, fmt.Errorf("find checklist item: %w", err)
	}
	if item == nil {
		return nil, apperrors.NewNotFoundError("checklist item not found")
	}

	users, err := resolveItemUsers(ctx, uc.users, item)
	if err != nil {
		return nil, err
	}

	return &GetItemResult{Item: dto.ToChecklistItemDTO(item, parent.SID(), users)}, nil
}
