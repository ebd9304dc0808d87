package user

import "context"

// Repository is the user directory: identifier-to-summary resolution.
type Repository interface {
	FindBySID(ctx context.Context, sid string) (*User, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*User, error)
}
