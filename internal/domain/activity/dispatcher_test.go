package activity

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryDispatcherDeliversToAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher(10, nil)

	var mu sync.Mutex
	received := make(map[string]int)
	done := make(chan struct{}, 2)

	for _, name := range []string{"first", "second"} {
		name := name
		d.Subscribe(HandlerFunc(func(event Event) error {
			mu.Lock()
			received[name]++
			mu.Unlock()
			done <- struct{}{}
			return nil
		}))
	}

	require.NoError(t, d.Start())
	defer func() { _ = d.Stop() }()

	event := NewEvent(TypeIssueActivityUpdated, "usr_a", "iss_a", "prj_a", "http://localhost", true)
	require.NoError(t, d.Publish(event))

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for handler delivery")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, received["first"])
	assert.Equal(t, 1, received["second"])
}

func TestInMemoryDispatcherPublishWhenStopped(t *testing.T) {
	d := NewInMemoryDispatcher(10, nil)

	err := d.Publish(NewEvent(TypeIssueActivityUpdated, "usr_a", "iss_a", "prj_a", "", false))
	assert.Error(t, err)
}

func TestInMemoryDispatcherPublishWhenBufferFull(t *testing.T) {
	d := NewInMemoryDispatcher(1, nil)
	d.running = true // no worker draining the channel

	require.NoError(t, d.Publish(Event{ID: "one"}))
	err := d.Publish(Event{ID: "two"})
	assert.Error(t, err)
}

func TestInMemoryDispatcherHandlerErrorDoesNotStopWorker(t *testing.T) {
	var mu sync.Mutex
	var failures []error
	d := NewInMemoryDispatcher(10, func(_ Event, err error) {
		mu.Lock()
		failures = append(failures, err)
		mu.Unlock()
	})

	delivered := make(chan string, 4)
	d.Subscribe(HandlerFunc(func(event Event) error {
		delivered <- event.ID
		if event.ID == "bad" {
			return errors.New("handler failed")
		}
		return nil
	}))

	require.NoError(t, d.Start())
	defer func() { _ = d.Stop() }()

	require.NoError(t, d.Publish(Event{ID: "bad"}))
	require.NoError(t, d.Publish(Event{ID: "good"}))

	var got []string
	for i := 0; i < 2; i++ {
		select {
		case id := <-delivered:
			got = append(got, id)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for delivery")
		}
	}

	assert.Equal(t, []string{"bad", "good"}, got)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, failures, 1)
	assert.EqualError(t, failures[0], "handler failed")
}

func TestInMemoryDispatcherStartStopLifecycle(t *testing.T) {
	d := NewInMemoryDispatcher(10, nil)

	require.NoError(t, d.Start())
	assert.Error(t, d.Start())

	require.NoError(t, d.Stop())
	assert.Error(t, d.Stop())
}

func TestEventWithChecklistItem(t *testing.T) {
	completed := true
	event := NewEvent(TypeIssueActivityUpdated, "usr_1", "iss_1", "prj_1", "https://app.example.com", true).
		WithChecklistItem(ChecklistItemPayload{
			ID:        "itm_abc",
			Name:      "write release notes",
			Action:    ActionUpdated,
			Completed: &completed,
		})

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, TypeIssueActivityUpdated, event.Type)
	assert.True(t, event.Notification)
	assert.Equal(t, "https://app.example.com", event.Origin)
	assert.NotZero(t, event.Epoch)

	var requested map[string]ChecklistItemPayload
	require.NoError(t, json.Unmarshal([]byte(event.RequestedData), &requested))
	assert.Equal(t, "itm_abc", requested["checklist_item"].ID)
	assert.Equal(t, ActionUpdated, requested["checklist_item"].Action)
	require.NotNil(t, requested["checklist_item"].Completed)
	assert.True(t, *requested["checklist_item"].Completed)

	var snapshot map[string]string
	require.NoError(t, json.Unmarshal([]byte(event.CurrentInstance), &snapshot))
	assert.Equal(t, "itm_abc", snapshot["checklist_item_id"])
}
