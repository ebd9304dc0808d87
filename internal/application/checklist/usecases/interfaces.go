// Package usecases implements the checklist application operations. Each use
// case takes a Command, enforces scoping and business rules, and returns a
// Result built from the dto package views.
package usecases

import "context"

// ListItemsExecutor lists an issue's checklist with its progress rollup.
type ListItemsExecutor interface {
	Execute(ctx context.Context, cmd ListItemsCommand) (*ListItemsResult, error)
}

// CreateItemExecutor adds an item to an issue's checklist.
type CreateItemExecutor interface {
	Execute(ctx context.Context, cmd CreateItemCommand) (*CreateItemResult, error)
}

// GetItemExecutor fetches a single checklist item.
type GetItemExecutor interface {
	Execute(ctx context.Context, cmd GetItemCommand) (*GetItemResult, error)
}

// UpdateItemExecutor applies a partial update to a checklist item.
type UpdateItemExecutor interface {
	Execute(ctx context.Context, cmd UpdateItemCommand) (*UpdateItemResult, error)
}

// DeleteItemExecutor soft-deletes a checklist item.
type DeleteItemExecutor interface {
	Execute(ctx context.Context, cmd DeleteItemCommand) error
}
