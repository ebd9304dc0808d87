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

// CreateItemCommand carries the create request. SortOrder nil means "use the
// default ordering weight".
type CreateItemCommand struct {
	WorkspaceSlug string
	ProjectSID    string
	IssueSID      string
	Name          string
	AssigneeSID   *string
	IsCompleted   bool
	SortOrder     *float64
	ActorID       uint
	ActorSID      string
	Origin        string
}

// CreateItemResult carries the created item view.
type CreateItemResult struct {
	Item dto.ChecklistItemDTO
}

// CreateItemUseCase adds a checklist item to an issue and emits an activity
// event. The item may be created already completed; who completed it is
// never recorded on creation.
type CreateItemUseCase struct {
	items      checklist.ItemRepository
	issues     issue.Repository
	users      user.Repository
	dispatcher activity.Dispatcher
	logger     logger.Interface
}

// NewCreateItemUseCase creates a CreateItemUseCase.
func NewCreateItemUseCase(
	items checklist.ItemRepository,
	issues issue.Repository,
	users user.Repository,
	dispatcher activity.Dispatcher,
	logger logger.Interface,
) *CreateItemUseCase {
	return &CreateItemUseCase{
		items:      items,
		issues:     issues,
		users:      users,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Execute creates the item.
func (uc *CreateItemUseCase) Execute(ctx context.Context, cmd CreateItemCommand) (*CreateItemResult, error) {
	parent, err := resolveIssue(ctx, uc.issues, cmd.IssueSID, cmd.ProjectSID, cmd.WorkspaceSlug)
	if err != nil {
		return nil, err
	}

	var assignee *user.User
	if cmd.AssigneeSID != nil {
		assignee, err = resolveAssignee(ctx, uc.users, *cmd.AssigneeSID)
		if err != nil {
			return nil, err
		}
	}

	var assigneeID *uint
	if assignee != nil {
		aid := assignee.ID()
		assigneeID = &aid
	}

	var sortOrder float64
	if cmd.SortOrder != nil {
		sortOrder = *cmd.SortOrder
	}

	item, err := checklist.NewItem(
		cmd.Name,
		parent.ID(),
		parent.ProjectID(),
		parent.WorkspaceID(),
		assigneeID,
		cmd.IsCompleted,
		sortOrder,
		cmd.ActorID,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.items.Save(ctx, item); err != nil {
		uc.logger.Errorw("failed to save checklist item", "issue_sid", cmd.IssueSID, "error", err)
		return nil, fmt.Errorf("save checklist item: %w", err)
	}

	uc.publishCreated(cmd, parent, item)

	users, err := resolveItemUsers(ctx, uc.users, item)
	if err != nil {
		return nil, err
	}

	return &CreateItemResult{Item: dto.ToChecklistItemDTO(item, parent.SID(), users)}, nil
}

func (uc *CreateItemUseCase) publishCreated(cmd CreateItemCommand, parent *issue.Issue, item *checklist.Item) {
	completed := item.IsCompleted()
	event := activity.NewEvent(
		activity.TypeIssueActivityUpdated,
		cmd.ActorSID,
		parent.SID(),
		parent.ProjectSID(),
		cmd.Origin,
		true,
	).WithChecklistItem(activity.ChecklistItemPayload{
		ID:        item.SID(),
		Name:      item.Name(),
		Action:    activity.ActionCreated,
		Completed: &completed,
	})

	if err := uc.dispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish checklist activity", "event_type", event.Type, "error", err)
	}
}
