package usecases

import (
	"context"
	"sync"
	"time"

	"prio/internal/domain/activity"
	"prio/internal/domain/checklist"
	"prio/internal/domain/issue"
	"prio/internal/domain/user"
)

type mockItemRepository struct {
	saveFunc        func(ctx context.Context, item *checklist.Item) error
	updateFunc      func(ctx context.Context, item *checklist.Item) error
	deleteFunc      func(ctx context.Context, itemID uint) error
	findBySIDFunc   func(ctx context.Context, sid string, issueID uint) (*checklist.Item, error)
	listByIssueFunc func(ctx context.Context, issueID uint) ([]*checklist.Item, error)
}

func (m *mockItemRepository) Save(ctx context.Context, item *checklist.Item) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, item)
	}
	return nil
}

func (m *mockItemRepository) Update(ctx context.Context, item *checklist.Item) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, item)
	}
	return nil
}

func (m *mockItemRepository) Delete(ctx context.Context, itemID uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, itemID)
	}
	return nil
}

func (m *mockItemRepository) FindBySID(ctx context.Context, sid string, issueID uint) (*checklist.Item, error) {
	if m.findBySIDFunc != nil {
		return m.findBySIDFunc(ctx, sid, issueID)
	}
	return nil, nil
}

func (m *mockItemRepository) ListByIssue(ctx context.Context, issueID uint) ([]*checklist.Item, error) {
	if m.listByIssueFunc != nil {
		return m.listByIssueFunc(ctx, issueID)
	}
	return nil, nil
}

type mockIssueRepository struct {
	findScopedFunc func(ctx context.Context, issueSID, projectSID, workspaceSlug string) (*issue.Issue, error)
}

func (m *mockIssueRepository) FindScoped(ctx context.Context, issueSID, projectSID, workspaceSlug string) (*issue.Issue, error) {
	if m.findScopedFunc != nil {
		return m.findScopedFunc(ctx, issueSID, projectSID, workspaceSlug)
	}
	return nil, nil
}

type mockUserRepository struct {
	findBySIDFunc func(ctx context.Context, sid string) (*user.User, error)
	findByIDsFunc func(ctx context.Context, ids []uint) ([]*user.User, error)
}

func (m *mockUserRepository) FindBySID(ctx context.Context, sid string) (*user.User, error) {
	if m.findBySIDFunc != nil {
		return m.findBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.findByIDsFunc != nil {
		return m.findByIDsFunc(ctx, ids)
	}
	return nil, nil
}

type mockDispatcher struct {
	mu          sync.Mutex
	events      []activity.Event
	publishFunc func(event activity.Event) error
}

func (m *mockDispatcher) Publish(event activity.Event) error {
	m.mu.Lock()
	m.events = append(m.events, event)
	m.mu.Unlock()
	if m.publishFunc != nil {
		return m.publishFunc(event)
	}
	return nil
}

func (m *mockDispatcher) Subscribe(handler activity.Handler) {}

func (m *mockDispatcher) Start() error { return nil }

func (m *mockDispatcher) Stop() error { return nil }

func (m *mockDispatcher) published() []activity.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]activity.Event, len(m.events))
	copy(out, m.events)
	return out
}

func newTestIssue() *issue.Issue {
	parent, err := issue.ReconstructIssue(10, "iss_parent00001", 20, "prj_scope000001", 30, "acme", 7, "Ship the release")
	if err != nil {
		panic(err)
	}
	return parent
}

func newTestItem(itemID uint, sid string, issueID uint, completed bool) *checklist.Item {
	createdAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	var completedAt *time.Time
	var completedBy *uint
	if completed {
		at := createdAt.Add(time.Hour)
		by := uint(42)
		completedAt = &at
		completedBy = &by
	}

	item, err := checklist.ReconstructItem(
		itemID, sid, issueID, 20, 30,
		"write release notes",
		completed, completedAt, completedBy,
		nil, 65535, 42, 42,
		createdAt, createdAt,
	)
	if err != nil {
		panic(err)
	}
	return item
}

func newTestUser(userID uint, sid string) *user.User {
	u, err := user.ReconstructUser(userID, sid, "dev@example.com", "Dev One", "Dev", "One", "")
	if err != nil {
		panic(err)
	}
	return u
}
