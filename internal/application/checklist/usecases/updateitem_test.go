package usecases

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prio/internal/domain/activity"
	"prio/internal/domain/checklist"
	"prio/internal/domain/user"
	apperrors "prio/internal/shared/errors"
	"prio/internal/shared/logger"
)

func boolPtr(v bool) *bool        { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func updateFixture(t *testing.T, item *checklist.Item) (*UpdateItemUseCase, *mockDispatcher, *checklist.Item) {
	t.Helper()
	parent := newTestIssue()

	items := &mockItemRepository{
		findBySIDFunc: func(ctx context.Context, sid string, issueID uint) (*checklist.Item, error) {
			if item != nil && sid == item.SID() {
				return item, nil
			}
			return nil, nil
		},
	}
	users := &mockUserRepository{
		findBySIDFunc: func(ctx context.Context, sid string) (*user.User, error) {
			if sid == "usr_assignee001" {
				return newTestUser(7, sid), nil
			}
			return nil, nil
		},
		findByIDsFunc: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			var out []*user.User
			for _, id := range ids {
				switch id {
				case 7:
					out = append(out, newTestUser(7, "usr_assignee001"))
				case 42:
					out = append(out, newTestUser(42, "usr_actor000001"))
				}
			}
			return out, nil
		},
	}
	dispatcher := &mockDispatcher{}

	uc := NewUpdateItemUseCase(items, scopedIssue(parent), users, dispatcher, logger.NewLogger())
	return uc, dispatcher, item
}

func baseUpdateCommand(itemSID string) UpdateItemCommand {
	return UpdateItemCommand{
		WorkspaceSlug: "acme",
		ProjectSID:    "prj_scope000001",
		IssueSID:      "iss_parent00001",
		ItemSID:       itemSID,
		ActorID:       42,
		ActorSID:      "usr_actor000001",
		Origin:        "https://app.example.com",
	}
}

func TestUpdateItemUseCase_ExecuteCompletionTransition(t *testing.T) {
	item := newTestItem(5, "itm_target00001", 10, false)
	uc, dispatcher, _ := updateFixture(t, item)

	cmd := baseUpdateCommand("itm_target00001")
	cmd.IsCompleted = boolPtr(true)

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.True(t, result.Item.IsCompleted)
	require.NotNil(t, result.Item.CompletedAt)
	require.NotNil(t, result.Item.CompletedBy)
	assert.Equal(t, "usr_actor000001", result.Item.CompletedBy.ID)

	events := dispatcher.published()
	require.Len(t, events, 1)
	assert.True(t, events[0].Notification)

	var requested map[string]activity.ChecklistItemPayload
	require.NoError(t, json.Unmarshal([]byte(events[0].RequestedData), &requested))
	require.NotNil(t, requested["checklist_item"].Completed)
	assert.True(t, *requested["checklist_item"].Completed)
}

func TestUpdateItemUseCase_ExecuteReassertCompleted(t *testing.T) {
	item := newTestItem(5, "itm_target00001", 10, true)
	originalCompletedAt := *item.CompletedAt()
	uc, dispatcher, _ := updateFixture(t, item)

	cmd := baseUpdateCommand("itm_target00001")
	cmd.IsCompleted = boolPtr(true)

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.True(t, result.Item.IsCompleted)
	require.NotNil(t, result.Item.CompletedAt)
	assert.Equal(t, originalCompletedAt, *result.Item.CompletedAt)

	events := dispatcher.published()
	require.Len(t, events, 1)
	assert.False(t, events[0].Notification)

	// No state change happened, so the event must not report one.
	var requested map[string]activity.ChecklistItemPayload
	require.NoError(t, json.Unmarshal([]byte(events[0].RequestedData), &requested))
	assert.Nil(t, requested["checklist_item"].Completed)
}

func TestUpdateItemUseCase_ExecuteReopen(t *testing.T) {
	item := newTestItem(5, "itm_target00001", 10, true)
	uc, dispatcher, _ := updateFixture(t, item)

	cmd := baseUpdateCommand("itm_target00001")
	cmd.IsCompleted = boolPtr(false)

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.False(t, result.Item.IsCompleted)
	assert.Nil(t, result.Item.CompletedAt)
	assert.Nil(t, result.Item.CompletedBy)

	events := dispatcher.published()
	require.Len(t, events, 1)
	assert.False(t, events[0].Notification)

	var requested map[string]activity.ChecklistItemPayload
	require.NoError(t, json.Unmarshal([]byte(events[0].RequestedData), &requested))
	require.NotNil(t, requested["checklist_item"].Completed)
	assert.False(t, *requested["checklist_item"].Completed)
}

func TestUpdateItemUseCase_ExecuteRename(t *testing.T) {
	item := newTestItem(5, "itm_target00001", 10, false)
	uc, _, _ := updateFixture(t, item)

	cmd := baseUpdateCommand("itm_target00001")
	cmd.Name = strPtr("updated name")
	cmd.SortOrder = floatPtr(128)

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "updated name", result.Item.Name)
	assert.Equal(t, float64(128), result.Item.SortOrder)
}

func TestUpdateItemUseCase_ExecuteNameTooLong(t *testing.T) {
	item := newTestItem(5, "itm_target00001", 10, false)
	uc, _, _ := updateFixture(t, item)

	cmd := baseUpdateCommand("itm_target00001")
	cmd.Name = strPtr(strings.Repeat("x", checklist.MaxNameLength+1))

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "name", appErr.Field)
}

func TestUpdateItemUseCase_ExecuteAssignAndClear(t *testing.T) {
	item := newTestItem(5, "itm_target00001", 10, false)
	uc, _, _ := updateFixture(t, item)

	cmd := baseUpdateCommand("itm_target00001")
	cmd.AssigneeProvided = true
	cmd.AssigneeSID = strPtr("usr_assignee001")

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	require.NotNil(t, result.Item.Assignee)
	assert.Equal(t, "usr_assignee001", result.Item.Assignee.ID)

	clearCmd := baseUpdateCommand("itm_target00001")
	clearCmd.AssigneeProvided = true
	clearCmd.AssigneeSID = nil

	result, err = uc.Execute(context.Background(), clearCmd)
	require.NoError(t, err)
	assert.Nil(t, result.Item.Assignee)
}

func TestUpdateItemUseCase_ExecuteAssigneeAbsentIsUntouched(t *testing.T) {
	item := newTestItem(5, "itm_target00001", 10, false)
	require.NoError(t, item.Assign(7))
	uc, _, _ := updateFixture(t, item)

	cmd := baseUpdateCommand("itm_target00001")
	cmd.Name = strPtr("still assigned")

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	require.NotNil(t, result.Item.Assignee)
	assert.Equal(t, "usr_assignee001", result.Item.Assignee.ID)
}

func TestUpdateItemUseCase_ExecuteUnknownAssignee(t *testing.T) {
	item := newTestItem(5, "itm_target00001", 10, false)
	uc, _, _ := updateFixture(t, item)

	cmd := baseUpdateCommand("itm_target00001")
	cmd.AssigneeProvided = true
	cmd.AssigneeSID = strPtr("usr_ghost000001")

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "assignee_id", appErr.Field)
	assert.Equal(t, "user not found", appErr.Message)
}

func TestUpdateItemUseCase_ExecuteItemNotFound(t *testing.T) {
	uc, _, _ := updateFixture(t, nil)

	cmd := baseUpdateCommand("itm_missing0001")
	cmd.Name = strPtr("whatever")

	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
