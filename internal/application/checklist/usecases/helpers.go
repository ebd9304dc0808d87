package usecases

import (
	"context"
	"fmt"

	"prio/internal/domain/checklist"
	"prio/internal/domain/issue"
	"prio/internal/domain/user"
	apperrors "prio/internal/shared/errors"
	"prio/internal/shared/id"
)

// resolveIssue looks up the parent issue inside its workspace/project scope.
// A scope mismatch is reported the same way as a missing issue.
func resolveIssue(ctx context.Context, repo issue.Repository, issueSID, projectSID, workspaceSlug string) (*issue.Issue, error) {
	parent, err := repo.FindScoped(ctx, issueSID, projectSID, workspaceSlug)
	if err != nil {
		return nil, fmt.Errorf("find issue: %w", err)
	}
	if parent == nil {
		return nil, apperrors.NewNotFoundError("issue not found")
	}
	return parent, nil
}

// resolveAssignee validates and resolves an assignee reference. Both a
// malformed identifier and one that matches nobody are validation problems
// keyed to the assignee field; the messages stay distinct.
func resolveAssignee(ctx context.Context, repo user.Repository, sid string) (*user.User, error) {
	if err := id.ValidatePrefix(sid, id.PrefixUser); err != nil {
		return nil, apperrors.NewFieldValidationError("assignee_id", "must be a valid user identifier")
	}

	assignee, err := repo.FindBySID(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("find assignee: %w", err)
	}
	if assignee == nil {
		return nil, apperrors.NewFieldValidationError("assignee_id", "user not found")
	}
	return assignee, nil
}

// resolveItemUsers batch-loads every user referenced by the given items so
// DTO building needs no further queries.
func resolveItemUsers(ctx context.Context, repo user.Repository, items ...*checklist.Item) (map[uint]*user.User, error) {
	seen := make(map[uint]struct{})
	var ids []uint
	collect := func(ref *uint) {
		if ref == nil {
			return
		}
		if _, ok := seen[*ref]; ok {
			return
		}
		seen[*ref] = struct{}{}
		ids = append(ids, *ref)
	}

	collectID := func(userID uint) {
		if userID != 0 {
			collect(&userID)
		}
	}

	for _, item := range items {
		collect(item.AssigneeID())
		collect(item.CompletedBy())
		collectID(item.CreatedBy())
		collectID(item.UpdatedBy())
	}

	users := make(map[uint]*user.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	found, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	for _, u := range found {
		users[u.ID()] = u
	}
	return users, nil
}
