package events

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/hours-api/pkg/jobs"
)

const jobType = "event.publish"

// QueueDispatcher fans events out to a publisher through a worker queue.
// Delivery is best effort: a full or stopped queue drops the event.
type QueueDispatcher struct {
	queue  *jobs.Queue
	logger *zap.Logger
}

// NewQueueDispatcher builds a dispatcher whose workers call publisher.
func NewQueueDispatcher(publisher Publisher, cfg jobs.QueueConfig) *QueueDispatcher {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	handler := func(ctx context.Context, job jobs.Job) error {
		event, ok := job.Payload.(Event)
		if !ok {
			return fmt.Errorf("unexpected payload %T", job.Payload)
		}
		return publisher.Publish(ctx, event)
	}
	return &QueueDispatcher{queue: jobs.NewQueue("events", handler, cfg), logger: cfg.Logger}
}

// Start launches the workers.
func (d *QueueDispatcher) Start(ctx context.Context) { d.queue.Start(ctx) }

// Stop waits for in-flight deliveries.
func (d *QueueDispatcher) Stop() { d.queue.Stop() }

// Dispatch implements Dispatcher.
func (d *QueueDispatcher) Dispatch(events ...Event) {
	for _, event := range events {
		job := jobs.Job{ID: event.ID, Type: jobType, Payload: event}
		if err := d.queue.TryEnqueue(job); err != nil {
			d.logger.Warn("event dropped", zap.String("event", event.Name), zap.String("event_id", event.ID), zap.Error(err))
		}
	}
}
