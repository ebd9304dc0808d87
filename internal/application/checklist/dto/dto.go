// Package dto defines the read views returned by checklist use cases.
package dto

import (
	"math"
	"time"

	"prio/internal/domain/checklist"
	"prio/internal/domain/user"
)

// UserLiteDTO is the trimmed user reference embedded in checklist views.
type UserLiteDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// ChecklistItemDTO is the API view of a single checklist item. User
// references resolve to public IDs; issue_id is the parent's public ID.
type ChecklistItemDTO struct {
	ID          string       `json:"id"`
	IssueID     string       `json:"issue_id"`
	Name        string       `json:"name"`
	IsCompleted bool         `json:"is_completed"`
	CompletedAt *time.Time   `json:"completed_at"`
	CompletedBy *UserLiteDTO `json:"completed_by"`
	Assignee    *UserLiteDTO `json:"assignee"`
	SortOrder   float64      `json:"sort_order"`
	CreatedBy   string       `json:"created_by"`
	UpdatedBy   string       `json:"updated_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ProgressDTO summarizes completion across an issue's checklist.
type ProgressDTO struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Percentage float64 `json:"percentage"`
}

// ChecklistDTO is the list view: ordered items plus the progress rollup.
type ChecklistDTO struct {
	Items    []ChecklistItemDTO `json:"checklist_items"`
	Progress ProgressDTO        `json:"progress"`
}

// ToUserLiteDTO converts a user summary.
func ToUserLiteDTO(u *user.User) *UserLiteDTO {
	if u == nil {
		return nil
	}
	return &UserLiteDTO{
		ID:          u.SID(),
		DisplayName: u.DisplayName(),
		Email:       u.Email(),
		AvatarURL:   u.AvatarURL(),
	}
}

// ToChecklistItemDTO converts an item, resolving user references through the
// given lookup. Unresolvable references render as null (or an empty string
// for the audit fields) rather than failing the read.
func ToChecklistItemDTO(item *checklist.Item, issueSID string, users map[uint]*user.User) ChecklistItemDTO {
	d := ChecklistItemDTO{
		ID:          item.SID(),
		IssueID:     issueSID,
		Name:        item.Name(),
		IsCompleted: item.IsCompleted(),
		CompletedAt: item.CompletedAt(),
		SortOrder:   item.SortOrder(),
		CreatedBy:   userSID(users, item.CreatedBy()),
		UpdatedBy:   userSID(users, item.UpdatedBy()),
		CreatedAt:   item.CreatedAt(),
		UpdatedAt:   item.UpdatedAt(),
	}

	if ref := item.AssigneeID(); ref != nil {
		d.Assignee = ToUserLiteDTO(users[*ref])
	}
	if ref := item.CompletedBy(); ref != nil {
		d.CompletedBy = ToUserLiteDTO(users[*ref])
	}

	return d
}

func userSID(users map[uint]*user.User, userID uint) string {
	if u := users[userID]; u != nil {
		return u.SID()
	}
	return ""
}

// ComputeProgress derives the completion rollup. An empty checklist reports
// zero percent, not a division error.
func ComputeProgress(items []*checklist.Item) ProgressDTO {
	p := ProgressDTO{Total: len(items)}
	for _, item := range items {
		if item.IsCompleted() {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = math.Round(float64(p.Completed)/float64(p.Total)*100*100) / 100
	}
	return p
}
