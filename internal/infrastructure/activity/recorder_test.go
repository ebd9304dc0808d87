package activity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainactivity "prio/internal/domain/activity"
	"prio/internal/shared/logger"
)

type mockStore struct {
	saveFunc func(ctx context.Context, event domainactivity.Event) error
	saved    []domainactivity.Event
}

func (m *mockStore) Save(ctx context.Context, event domainactivity.Event) error {
	m.saved = append(m.saved, event)
	if m.saveFunc != nil {
		return m.saveFunc(ctx, event)
	}
	return nil
}

func TestRecorderHandle(t *testing.T) {
	store := &mockStore{}
	recorder := NewRecorder(store, logger.NewLogger())

	event := domainactivity.NewEvent(domainactivity.TypeIssueActivityUpdated, "usr_a", "iss_a", "prj_a", "", true)
	require.NoError(t, recorder.Handle(event))

	require.Len(t, store.saved, 1)
	assert.Equal(t, event.ID, store.saved[0].ID)
}

func TestRecorderHandleStoreError(t *testing.T) {
	store := &mockStore{
		saveFunc: func(ctx context.Context, event domainactivity.Event) error {
			return errors.New("disk full")
		},
	}
	recorder := NewRecorder(store, logger.NewLogger())

	err := recorder.Handle(domainactivity.NewEvent(domainactivity.TypeIssueActivityUpdated, "usr_a", "iss_a", "prj_a", "", false))
	assert.Error(t, err)
}
