package usecases

import (
	"context"
	"fmt"

	"prio/internal/application/checklist/dto"
	"prio/internal/domain/activity"
	"prio/internal/domain/checklist"
	"prio/internal/domain/issue"
	"prio/internal/domain/user"
	apperrors "prio/internal/shared/errors"
	"prio/internal/shared/logger"
)

// UpdateItemCommand is a partial update: nil pointer fields are left
// untouched. The assignee is tri-state, so a provided-but-nil AssigneeSID
// clears it; AssigneeProvided distinguishes "clear" from "absent".
type UpdateItemCommand struct {
	WorkspaceSlug    string
	ProjectSID       string
	IssueSID         string
	ItemSID          string
	Name             *string
	IsCompleted      *bool
	SortOrder        *float64
	AssigneeProvided bool
	AssigneeSID      *string
	ActorID          uint
	ActorSID         string
	Origin           string
}

// UpdateItemResult carries the updated item view.
type UpdateItemResult struct {
	Item dto.ChecklistItemDTO
}

// UpdateItemUseCase applies a partial update. The completion stamps follow
// the transition: moving to completed records when and by whom, moving back
// clears both. Re-asserting the current completion state changes nothing.
type UpdateItemUseCase struct {
	items      checklist.ItemRepository
	issues     issue.Repository
	users      user.Repository
	dispatcher activity.Dispatcher
	logger     logger.Interface
}

// NewUpdateItemUseCase creates an UpdateItemUseCase.
func NewUpdateItemUseCase(
	items checklist.ItemRepository,
	issues issue.Repository,
	users user.Repository,
	dispatcher activity.Dispatcher,
	logger logger.Interface,
) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		items:      items,
		issues:     issues,
		users:      users,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Execute applies the update.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, cmd UpdateItemCommand) (*UpdateItemResult, error) {
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

	if cmd.Name != nil {
		if err := item.Rename(*cmd.Name); err != nil {
			return nil, apperrors.NewFieldValidationError("name", err.Error())
		}
	}

	if cmd.SortOrder != nil {
		item.SetSortOrder(*cmd.SortOrder)
	}

	if cmd.AssigneeProvided {
		if cmd.AssigneeSID == nil {
			item.Unassign()
		} else {
			assignee, err := resolveAssignee(ctx, uc.users, *cmd.AssigneeSID)
			if err != nil {
				return nil, err
			}
			if err := item.Assign(assignee.ID()); err != nil {
				return nil, apperrors.NewValidationError(err.Error())
			}
		}
	}

	wasCompleted := item.IsCompleted()
	completedNow := false
	if cmd.IsCompleted != nil {
		switch {
		case *cmd.IsCompleted && !item.IsCompleted():
			item.Complete(cmd.ActorID)
			completedNow = true
		case !*cmd.IsCompleted && item.IsCompleted():
			item.Reopen()
		}
	}

	item.Touch(cmd.ActorID)

	if err := uc.items.Update(ctx, item); err != nil {
		uc.logger.Errorw("failed to update checklist item", "item_sid", cmd.ItemSID, "error", err)
		return nil, fmt.Errorf("update checklist item: %w", err)
	}

	// The event only carries the completion flag when it actually flipped;
	// re-asserting the current state is not a completion change.
	var completedChange *bool
	if item.IsCompleted() != wasCompleted {
		v := item.IsCompleted()
		completedChange = &v
	}

	uc.publishUpdated(cmd, parent, item, completedChange, completedNow)

	users, err := resolveItemUsers(ctx, uc.users, item)
	if err != nil {
		return nil, err
	}

	return &UpdateItemResult{Item: dto.ToChecklistItemDTO(item, parent.SID(), users)}, nil
}

func (uc *UpdateItemUseCase) publishUpdated(cmd UpdateItemCommand, parent *issue.Issue, item *checklist.Item, completedChange *bool, completedNow bool) {
	payload := activity.ChecklistItemPayload{
		ID:        item.SID(),
		Name:      item.Name(),
		Action:    activity.ActionUpdated,
		Completed: completedChange,
	}

	event := activity.NewEvent(
		activity.TypeIssueActivityUpdated,
		cmd.ActorSID,
		parent.SID(),
		parent.ProjectSID(),
		cmd.Origin,
		completedNow,
	).WithChecklistItem(payload)

	if err := uc.dispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish checklist activity", "event_type", event.Type, "error", err)
	}
}
