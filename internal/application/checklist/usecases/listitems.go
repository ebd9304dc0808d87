package usecases

import (
	"context"
	"fmt"

	"prio/internal/application/checklist/dto"
	"prio/internal/domain/checklist"
	"prio/internal/domain/issue"
	"prio/internal/domain/user"
	"prio/internal/shared/logger"
)

// ListItemsCommand identifies the issue whose checklist is requested.
type ListItemsCommand struct {
	WorkspaceSlug string
	ProjectSID    string
	IssueSID      string
}

// ListItemsResult carries the ordered checklist and progress rollup.
type ListItemsResult struct {
	Checklist dto.ChecklistDTO
}

// ListItemsUseCase returns an issue's checklist ordered by sort order then
// creation time.
type ListItemsUseCase struct {
	items  checklist.ItemRepository
	issues issue.Repository
	users  user.Repository
	logger logger.Interface
}

// NewListItemsUseCase creates a ListItemsUseCase.
func NewListItemsUseCase(
	items checklist.ItemRepository,
	issues issue.Repository,
	users user.Repository,
	logger logger.Interface,
) *ListItemsUseCase {
	return &ListItemsUseCase{
		items:  items,
		issues: issues,
		users:  users,
		logger: logger,
	}
}

// Execute lists the checklist items for the scoped issue.
func (uc *ListItemsUseCase) Execute(ctx context.Context, cmd ListItemsCommand) (*ListItemsResult, error) {
	parent, err := resolveIssue(ctx, uc.issues, cmd.IssueSID, cmd.ProjectSID, cmd.WorkspaceSlug)
	if err != nil {
		return nil, err
	}

	items, err := uc.items.ListByIssue(ctx, parent.ID())
	if err != nil {
		uc.logger.Errorw("failed to list checklist items", "issue_sid", cmd.IssueSID, "error", err)
		return nil, fmt.Errorf("list checklist items: %w", err)
	}

	users, err := resolveItemUsers(ctx, uc.users, items...)
	if err != nil {
		return nil, err
	}

	view := dto.ChecklistDTO{
		Items:    make([]dto.ChecklistItemDTO, 0, len(items)),
		Progress: dto.ComputeProgress(items),
	}
	for _, item := range items {
		view.Items = append(view.Items, dto.ToChecklistItemDTO(item, parent.SID(), users))
	}

	return &ListItemsResult{Checklist: view}, nil
}
