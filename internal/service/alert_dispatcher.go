package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/team7/classroom-informer-api/internal/models"
	"github.com/team7/classroom-informer-api/pkg/jobs"
)

// AlertDispatcher delivers a room-free alert to the user's device channel.
type AlertDispatcher interface {
	Dispatch(ctx context.Context, userID string, alert models.Alert) error
}

// AlertPayload is the job payload carried through the dispatch queue.
type AlertPayload struct {
	UserID string       `json:"user_id"`
	Alert  models.Alert `json:"alert"`
}

// LogAlertDispatcher records alerts in the log. It stands in where no push
// provider is configured and serves as the terminal delivery step of the
// queue-backed dispatcher.
type LogAlertDispatcher struct {
	logger *zap.Logger
}

// NewLogAlertDispatcher builds a log-only dispatcher.
func NewLogAlertDispatcher(logger *zap.Logger) *LogAlertDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogAlertDispatcher{logger: logger}
}

// Dispatch logs the alert.
func (d *LogAlertDispatcher) Dispatch(_ context.Context, userID string, alert models.Alert) error {
	d.logger.Info("room free alert",
		zap.String("user_id", userID),
		zap.Int64("room_id", alert.RoomID),
		zap.String("room_name", alert.RoomName),
		zap.String("target_time", alert.TargetTime),
		zap.Int("minutes_left", alert.MinutesLeft))
	return nil
}

// QueueAlertDispatcher hands alerts to a background queue so the HTTP request
// never waits on delivery.
type QueueAlertDispatcher struct {
	queue *jobs.Queue
}

// NewQueueAlertDispatcher builds a queue-backed dispatcher around an existing
// queue. The queue's handler decides the actual delivery mechanism.
func NewQueueAlertDispatcher(queue *jobs.Queue) *QueueAlertDispatcher {
	return &QueueAlertDispatcher{queue: queue}
}

// Dispatch enqueues the alert for background delivery.
func (d *QueueAlertDispatcher) Dispatch(_ context.Context, userID string, alert models.Alert) error {
	return d.queue.Enqueue(jobs.Job{
		ID:      uuid.NewString(),
		Type:    "room_free_alert",
		Payload: AlertPayload{UserID: userID, Alert: alert},
	})
}

// NewAlertQueue builds the background queue whose handler performs the final
// delivery through the given dispatcher.
func NewAlertQueue(delegate AlertDispatcher, cfg jobs.QueueConfig) *jobs.Queue {
	return jobs.NewQueue("alerts", func(ctx context.Context, job jobs.Job) error {
		payload, ok := job.Payload.(AlertPayload)
		if !ok {
			return nil
		}
		return delegate.Dispatch(ctx, payload.UserID, payload.Alert)
	}, cfg)
}
