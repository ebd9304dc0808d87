package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prio/internal/domain/activity"
	"prio/internal/domain/checklist"
	"prio/internal/domain/issue"
	"prio/internal/domain/user"
	apperrors "prio/internal/shared/errors"
	"prio/internal/shared/logger"
)

func scopedIssue(parent *issue.Issue) *mockIssueRepository {
	return &mockIssueRepository{
		findScopedFunc: func(ctx context.Context, issueSID, projectSID, workspaceSlug string) (*issue.Issue, error) {
			return parent, nil
		},
	}
}

func TestCreateItemUseCase_Execute(t *testing.T) {
	parent := newTestIssue()
	var saved *checklist.Item

	items := &mockItemRepository{
		saveFunc: func(ctx context.Context, item *checklist.Item) error {
			saved = item
			return item.SetID(101)
		},
	}
	users := &mockUserRepository{
		findByIDsFunc: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			return []*user.User{newTestUser(42, "usr_actor000001")}, nil
		},
	}
	dispatcher := &mockDispatcher{}

	uc := NewCreateItemUseCase(items, scopedIssue(parent), users, dispatcher, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateItemCommand{
		WorkspaceSlug: "acme",
		ProjectSID:    "prj_scope000001",
		IssueSID:      "iss_parent00001",
		Name:          "write release notes",
		ActorID:       42,
		ActorSID:      "usr_actor000001",
		Origin:        "https://app.example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, parent.ID(), saved.IssueID())
	assert.Equal(t, float64(checklist.DefaultSortOrder), saved.SortOrder())
	assert.Equal(t, saved.SID(), result.Item.ID)
	assert.Equal(t, parent.SID(), result.Item.IssueID)
	assert.Equal(t, "usr_actor000001", result.Item.CreatedBy)
	assert.Equal(t, "usr_actor000001", result.Item.UpdatedBy)
	assert.False(t, result.Item.IsCompleted)

	events := dispatcher.published()
	require.Len(t, events, 1)
	assert.Equal(t, activity.TypeIssueActivityUpdated, events[0].Type)
	assert.Equal(t, "usr_actor000001", events[0].ActorSID)
	assert.Equal(t, parent.SID(), events[0].IssueSID)
	assert.Equal(t, parent.ProjectSID(), events[0].ProjectSID)
	assert.True(t, events[0].Notification)
	assert.Equal(t, "https://app.example.com", events[0].Origin)

	var requested map[string]activity.ChecklistItemPayload
	require.NoError(t, json.Unmarshal([]byte(events[0].RequestedData), &requested))
	assert.Equal(t, activity.ActionCreated, requested["checklist_item"].Action)
}

func TestCreateItemUseCase_ExecuteWithAssignee(t *testing.T) {
	parent := newTestIssue()
	assignee := newTestUser(7, "usr_assignee001")

	users := &mockUserRepository{
		findBySIDFunc: func(ctx context.Context, sid string) (*user.User, error) {
			assert.Equal(t, "usr_assignee001", sid)
			return assignee, nil
		},
		findByIDsFunc: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			return []*user.User{assignee, newTestUser(42, "usr_actor000001")}, nil
		},
	}
	items := &mockItemRepository{
		saveFunc: func(ctx context.Context, item *checklist.Item) error {
			return item.SetID(102)
		},
	}

	uc := NewCreateItemUseCase(items, scopedIssue(parent), users, &mockDispatcher{}, logger.NewLogger())
	assigneeSID := "usr_assignee001"
	result, err := uc.Execute(context.Background(), CreateItemCommand{
		WorkspaceSlug: "acme",
		ProjectSID:    "prj_scope000001",
		IssueSID:      "iss_parent00001",
		Name:          "review the PR",
		AssigneeSID:   &assigneeSID,
		ActorID:       42,
		ActorSID:      "usr_actor000001",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Item.Assignee)
	assert.Equal(t, "usr_assignee001", result.Item.Assignee.ID)
}

func TestCreateItemUseCase_ExecuteCompletedOnCreate(t *testing.T) {
	parent := newTestIssue()
	items := &mockItemRepository{
		saveFunc: func(ctx context.Context, item *checklist.Item) error {
			return item.SetID(103)
		},
	}

	uc := NewCreateItemUseCase(items, scopedIssue(parent), &mockUserRepository{}, &mockDispatcher{}, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateItemCommand{
		WorkspaceSlug: "acme",
		ProjectSID:    "prj_scope000001",
		IssueSID:      "iss_parent00001",
		Name:          "already done",
		IsCompleted:   true,
		ActorID:       42,
		ActorSID:      "usr_actor000001",
	})

	require.NoError(t, err)
	assert.True(t, result.Item.IsCompleted)
	assert.Nil(t, result.Item.CompletedBy)
}

func TestCreateItemUseCase_ExecuteValidation(t *testing.T) {
	parent := newTestIssue()
	uc := NewCreateItemUseCase(&mockItemRepository{}, scopedIssue(parent), &mockUserRepository{}, &mockDispatcher{}, logger.NewLogger())

	tests := []struct {
		name string
		cmd  CreateItemCommand
	}{
		{
			name: "empty name",
			cmd:  CreateItemCommand{Name: "", ActorID: 42},
		},
		{
			name: "name too long",
			cmd:  CreateItemCommand{Name: strings.Repeat("x", checklist.MaxNameLength+1), ActorID: 42},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cmd.WorkspaceSlug = "acme"
			tt.cmd.ProjectSID = "prj_scope000001"
			tt.cmd.IssueSID = "iss_parent00001"

			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestCreateItemUseCase_ExecuteMalformedAssignee(t *testing.T) {
	parent := newTestIssue()
	uc := NewCreateItemUseCase(&mockItemRepository{}, scopedIssue(parent), &mockUserRepository{}, &mockDispatcher{}, logger.NewLogger())

	bad := "prj_notauser001"
	_, err := uc.Execute(context.Background(), CreateItemCommand{
		WorkspaceSlug: "acme",
		ProjectSID:    "prj_scope000001",
		IssueSID:      "iss_parent00001",
		Name:          "task",
		AssigneeSID:   &bad,
		ActorID:       42,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "assignee_id", appErr.Field)
}

func TestCreateItemUseCase_ExecuteUnknownAssignee(t *testing.T) {
	parent := newTestIssue()
	uc := NewCreateItemUseCase(&mockItemRepository{}, scopedIssue(parent), &mockUserRepository{}, &mockDispatcher{}, logger.NewLogger())

	ghost := "usr_ghost000001"
	_, err := uc.Execute(context.Background(), CreateItemCommand{
		WorkspaceSlug: "acme",
		ProjectSID:    "prj_scope000001",
		IssueSID:      "iss_parent00001",
		Name:          "task",
		AssigneeSID:   &ghost,
		ActorID:       42,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "assignee_id", appErr.Field)
	assert.Equal(t, "user not found", appErr.Message)
}

func TestCreateItemUseCase_ExecuteIssueNotFound(t *testing.T) {
	uc := NewCreateItemUseCase(&mockItemRepository{}, &mockIssueRepository{}, &mockUserRepository{}, &mockDispatcher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateItemCommand{
		WorkspaceSlug: "acme",
		ProjectSID:    "prj_scope000001",
		IssueSID:      "iss_missing0001",
		Name:          "task",
		ActorID:       42,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCreateItemUseCase_ExecutePublishFailureDoesNotFail(t *testing.T) {
	parent := newTestIssue()
	items := &mockItemRepository{
		saveFunc: func(ctx context.Context, item *checklist.Item) error {
			return item.SetID(104)
		},
	}
	dispatcher := &mockDispatcher{
		publishFunc: func(event activity.Event) error {
			return errors.New("buffer full")
		},
	}

	uc := NewCreateItemUseCase(items, scopedIssue(parent), &mockUserRepository{}, dispatcher, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateItemCommand{
		WorkspaceSlug: "acme",
		ProjectSID:    "prj_scope000001",
		IssueSID:      "iss_parent00001",
		Name:          "task",
		ActorID:       42,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Item.ID)
}
