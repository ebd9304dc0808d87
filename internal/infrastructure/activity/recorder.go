// Package activity contains the infrastructure side of the activity stream:
// handlers subscribed to the dispatcher.
package activity

import (
	"context"
	"time"

	domainactivity "prio/internal/domain/activity"
	"prio/internal/shared/logger"
)

// Store persists delivered activity events.
type Store interface {
	Save(ctx context.Context, event domainactivity.Event) error
}

// Recorder subscribes to the dispatcher and writes every event to durable
// storage.
type Recorder struct {
	store  Store
	logger logger.Interface
}

// NewRecorder creates a Recorder.
func NewRecorder(store Store, logger logger.Interface) *Recorder {
	return &Recorder{
		store:  store,
		logger: logger,
	}
}

// Handle implements activity.Handler. Each event gets its own timeout since
// delivery happens outside any request context.
func (r *Recorder) Handle(event domainactivity.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.store.Save(ctx, event); err != nil {
		r.logger.Errorw("failed to record activity event",
			"event_id", event.ID,
			"event_type", event.Type,
			"error", err,
		)
		return err
	}

	r.logger.Debugw("recorded activity event",
		"event_id", event.ID,
		"event_type", event.Type,
		"issue_sid", event.IssueSID,
	)
	return nil
}
