package usecases

import (
	"context"
	"fmt"

	"prio/internal/domain/activity"
	"prio/internal/domain/checklist"
	"prio/internal/domain/issue"
	apperrors "prio/internal/shared/errors"
	"prio/internal/shared/logger"
)

// DeleteItemCommand identifies the item to soft-delete.
type DeleteItemCommand struct {
	WorkspaceSlug string
	ProjectSID    string
	IssueSID      string
	ItemSID       string
	ActorID       uint
	ActorSID      string
	Origin        string
}

// DeleteItemUseCase soft-deletes a checklist item. Deleting twice reports
// not found on the second call, since deleted items vanish from lookups.
type DeleteItemUseCase struct {
	items      checklist.ItemRepository
	issues     issue.Repository
	dispatcher activity.Dispatcher
	logger     logger.Interface
}

// NewDeleteItemUseCase creates a DeleteItemUseCase.
func NewDeleteItemUseCase(
	items checklist.ItemRepository,
	issues issue.Repository,
	dispatcher activity.Dispatcher,
	logger logger.Interface,
) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		items:      items,
		issues:     issues,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Execute deletes the item.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, cmd DeleteItemCommand) error {
	parent, err := resolveIssue(ctx, uc.issues, cmd.IssueSID, cmd.ProjectSID, cmd.WorkspaceSlug)
	if err != nil {
		return err
	}

	item, err := uc.items.FindBySID(ctx, cmd.ItemSID, parent.ID())
	if err != nil {
		uc.logger.Errorw("failed to find checklist item", "item_sid", cmd.ItemSID, "error", err)
		return fmt.Errorf("find checklist item: %w", err)
	}
	if item == nil {
		return apperrors.NewNotFoundError("checklist item not found")
	}

	if err := uc.items.Delete(ctx, item.ID()); err != nil {
		uc.logger.Errorw("failed to delete checklist item", "item_sid", cmd.ItemSID, "error", err)
		return fmt.Errorf("delete checklist item: %w", err)
	}

	event := activity.NewEvent(
		activity.TypeIssueActivityUpdated,
		cmd.ActorSID,
		parent.SID(),
		parent.ProjectSID(),
		cmd.Origin,
		false,
	).WithChecklistItem(activity.ChecklistItemPayload{
		ID:     item.SID(),
		Name:   item.Name(),
		Action: activity.ActionDeleted,
	})

	if err := uc.dispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish checklist activity", "event_type", event.Type, "error", err)
	}

	return nil
}
