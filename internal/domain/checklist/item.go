package checklist

import (
	"fmt"
	"time"

	"prio/internal/shared/biztime"
	"prio/internal/shared/id"
)

const (
	// MaxNameLength bounds the checklist item name.
	MaxNameLength = 500

	// DefaultSortOrder is assigned when the caller does not provide one.
	DefaultSortOrder = 65535
)

// Item is a single completable sub-task belonging to an issue. Completion
// state keeps the invariant: isCompleted == true exactly when completedAt is
// set, and completedBy is only ever set alongside completedAt.
type Item struct {
	id          uint
	sid         string
	issueID     uint
	projectID   uint
	workspaceID uint
	name        string
	isCompleted bool
	completedAt *time.Time
	completedBy *uint
	assigneeID  *uint
	sortOrder   float64
	createdBy   uint
	updatedBy   uint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewItem builds an item for the create path. The completion flag is
// accepted as-is but completedAt is left unset: the persistence layer stamps
// it on save, and completedBy is never set on creation.
func NewItem(
	name string,
	issueID uint,
	projectID uint,
	workspaceID uint,
	assigneeID *uint,
	isCompleted bool,
	sortOrder float64,
	actorID uint,
) (*Item, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if projectID == 0 || workspaceID == 0 {
		return nil, fmt.Errorf("project and workspace references are required")
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if sortOrder <= 0 {
		sortOrder = DefaultSortOrder
	}

	now := biztime.NowUTC()

	return &Item{
		sid:         id.MustGenerateWithPrefix(id.PrefixChecklistItem),
		issueID:     issueID,
		projectID:   projectID,
		workspaceID: workspaceID,
		name:        name,
		isCompleted: isCompleted,
		assigneeID:  assigneeID,
		sortOrder:   sortOrder,
		createdBy:   actorID,
		updatedBy:   actorID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructItem rehydrates an item from persistence.
func ReconstructItem(
	itemID uint,
	sid string,
	issueID uint,
	projectID uint,
	workspaceID uint,
	name string,
	isCompleted bool,
	completedAt *time.Time,
	completedBy *uint,
	assigneeID *uint,
	sortOrder float64,
	createdBy uint,
	updatedBy uint,
	createdAt time.Time,
	updatedAt time.Time,
) (*Item, error) {
	if itemID == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("item SID is required")
	}
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}

	return &Item{
		id:          itemID,
		sid:         sid,
		issueID:     issueID,
		projectID:   projectID,
		workspaceID: workspaceID,
		name:        name,
		isCompleted: isCompleted,
		completedAt: completedAt,
		completedBy: completedBy,
		assigneeID:  assigneeID,
		sortOrder:   sortOrder,
		createdBy:   createdBy,
		updatedBy:   updatedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func validateName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("name exceeds maximum length of %d characters", MaxNameLength)
	}
	return nil
}

func (i *Item) ID() uint {
	return i.id
}

func (i *Item) SID() string {
	return i.sid
}

func (i *Item) IssueID() uint {
	return i.issueID
}

func (i *Item) ProjectID() uint {
	return i.projectID
}

func (i *Item) WorkspaceID() uint {
	return i.workspaceID
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) IsCompleted() bool {
	return i.isCompleted
}

func (i *Item) CompletedAt() *time.Time {
	return i.completedAt
}

func (i *Item) CompletedBy() *uint {
	return i.completedBy
}

func (i *Item) AssigneeID() *uint {
	return i.assigneeID
}

func (i *Item) SortOrder() float64 {
	return i.sortOrder
}

func (i *Item) CreatedBy() uint {
	return i.createdBy
}

func (i *Item) UpdatedBy() uint {
	return i.updatedBy
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

// SetID assigns the storage identifier once, after insert.
func (i *Item) SetID(itemID uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	if itemID == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = itemID
	return nil
}

// RecordPersistence syncs store-generated state back into the entity after a
// save: authoritative timestamps and the completion stamp the persistence
// hook may have applied.
func (i *Item) RecordPersistence(createdAt, updatedAt time.Time, completedAt *time.Time) {
	i.createdAt = createdAt
	i.updatedAt = updatedAt
	i.completedAt = completedAt
}

// Rename updates the item name.
func (i *Item) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	i.name = name
	return nil
}

// SetSortOrder updates the display ordering weight.
func (i *Item) SetSortOrder(sortOrder float64) {
	i.sortOrder = sortOrder
}

// Assign sets the assignee.
func (i *Item) Assign(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	i.assigneeID = &userID
	return nil
}

// Unassign clears the assignee.
func (i *Item) Unassign() {
	i.assigneeID = nil
}

// Complete marks the item done, stamping the completion time and the acting
// user. Completing an already-completed item is a no-op.
func (i *Item) Complete(actorID uint) {
	if i.isCompleted {
		return
	}
	now := biztime.NowUTC()
	i.isCompleted = true
	i.completedAt = &now
	if actorID != 0 {
		i.completedBy = &actorID
	}
}

// Reopen clears the completion state, including who completed it.
func (i *Item) Reopen() {
	i.isCompleted = false
	i.completedAt = nil
	i.completedBy = nil
}

// Touch records the acting user as the last updater.
func (i *Item) Touch(actorID uint) {
	i.updatedBy = actorID
	i.updatedAt = biztime.NowUTC()
}
