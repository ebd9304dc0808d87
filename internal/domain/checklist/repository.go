package checklist

import "context"

// ItemRepository persists checklist items. Lookups never return soft-deleted
// rows; a deleted item is indistinguishable from a missing one.
type ItemRepository interface {
	Save(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, itemID uint) error
	FindBySID(ctx context.Context, sid string, issueID uint) (*Item, error)
	ListByIssue(ctx context.Context, issueID uint) ([]*Item, error)
}
