// Package activity defines the asynchronous activity-event contract: every
// checklist mutation emits an event describing what changed, consumed by the
// audit/notification subsystem. Emission is fire-and-forget; delivery
// failures are never surfaced to the request that caused them.
package activity

import (
	"encoding/json"

	"github.com/google/uuid"

	"prio/internal/shared/biztime"
)

// Event types understood by the activity subsystem.
const (
	TypeIssueActivityUpdated = "issue.activity.updated"
)

// Actions recorded for checklist items.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event is an activity record describing a single mutation.
type Event struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	RequestedData   string `json:"requested_data"`
	ActorSID        string `json:"actor_id"`
	IssueSID        string `json:"issue_id"`
	ProjectSID      string `json:"project_id"`
	CurrentInstance string `json:"current_instance"`
	Epoch           int64  `json:"epoch"`
	Notification    bool   `json:"notification"`
	Origin          string `json:"origin"`
}

// NewEvent builds an event with a fresh ID and the current epoch.
func NewEvent(eventType, actorSID, issueSID, projectSID, origin string, notification bool) Event {
	return Event{
		ID:           uuid.NewString(),
		Type:         eventType,
		ActorSID:     actorSID,
		IssueSID:     issueSID,
		ProjectSID:   projectSID,
		Epoch:        biztime.Epoch(),
		Notification: notification,
		Origin:       origin,
	}
}

// ChecklistItemPayload is the requested_data body for checklist mutations.
type ChecklistItemPayload struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Action    string `json:"action"`
	Completed *bool  `json:"completed,omitempty"`
}

// WithChecklistItem attaches the checklist payload and current-instance
// snapshot to the event.
func (e Event) WithChecklistItem(payload ChecklistItemPayload) Event {
	data, _ := json.Marshal(map[string]ChecklistItemPayload{"checklist_item": payload})
	e.RequestedData = string(data)

	if payload.ID != "" {
		snapshot, _ := json.Marshal(map[string]string{"checklist_item_id": payload.ID})
		e.CurrentInstance = string(snapshot)
	}

	return e
}
