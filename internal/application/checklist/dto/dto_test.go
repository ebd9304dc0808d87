package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prio/internal/domain/checklist"
	"prio/internal/domain/user"
)

func itemWithCompletion(t *testing.T, itemID uint, completed bool) *checklist.Item {
	t.Helper()
	item, err := checklist.NewItem("task", 10, 20, 30, nil, false, 0, 42)
	require.NoError(t, err)
	require.NoError(t, item.SetID(itemID))
	if completed {
		item.Complete(42)
	}
	return item
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name           string
		completed      int
		total          int
		wantPercentage float64
	}{
		{"empty checklist", 0, 0, 0},
		{"none completed", 0, 4, 0},
		{"one third", 1, 3, 33.33},
		{"two thirds", 2, 3, 66.67},
		{"all completed", 5, 5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]*checklist.Item, 0, tt.total)
			for i := 0; i < tt.total; i++ {
				items = append(items, itemWithCompletion(t, uint(i+1), i < tt.completed))
			}

			p := ComputeProgress(items)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.completed, p.Completed)
			assert.InDelta(t, tt.wantPercentage, p.Percentage, 0.001)
		})
	}
}

func TestToChecklistItemDTOUnresolvableUser(t *testing.T) {
	item := itemWithCompletion(t, 1, true)

	d := ToChecklistItemDTO(item, "iss_parent00001", nil)
	assert.True(t, d.IsCompleted)
	assert.NotNil(t, d.CompletedAt)
	assert.Nil(t, d.CompletedBy, "unknown completer renders as null")
	assert.Equal(t, "iss_parent00001", d.IssueID)
	assert.Empty(t, d.CreatedBy, "unknown creator renders as empty")
	assert.Empty(t, d.UpdatedBy)
}

func TestToChecklistItemDTOAuditFields(t *testing.T) {
	item := itemWithCompletion(t, 1, false)

	actor, err := user.ReconstructUser(42, "usr_actor000001", "dev@example.com", "Dev One", "Dev", "One", "")
	require.NoError(t, err)
	users := map[uint]*user.User{42: actor}

	d := ToChecklistItemDTO(item, "iss_parent00001", users)
	assert.Equal(t, "usr_actor000001", d.CreatedBy)
	assert.Equal(t, "usr_actor000001", d.UpdatedBy)
}

func TestChecklistDTOWireKeys(t *testing.T) {
	view := ChecklistDTO{
		Items:    []ChecklistItemDTO{},
		Progress: ProgressDTO{},
	}

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "checklist_items")
	assert.Contains(t, decoded, "progress")
	assert.NotContains(t, decoded, "items")
}
