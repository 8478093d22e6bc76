package usecases

import (
	"context"
	"time"

	"go.uber.org/zap"

	"growcore.backend/internal/domain/events"
	"growcore.backend/internal/domain/repositories"
	"growcore.backend/pkg/logger"
)

const (
	dispatchBuffer  = 256
	dispatchTimeout = 5 * time.Second
)

// Dispatcher delivers workflow events to the notification sink from a
// background worker. Delivery is best-effort: a failing or slow sink is
// logged and never propagates back into the operation that produced the
// event.
type Dispatcher struct {
	sink  repositories.NotificationSink
	queue chan events.Event
	stop  chan struct{}
	done  chan struct{}
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(sink repositories.NotificationSink) *Dispatcher {
	return &Dispatcher{
		sink:  sink,
		queue: make(chan events.Event, dispatchBuffer),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Publish enqueues events for delivery. Never blocks: when the queue is
// full the event is dropped and logged, since notification loss must not
// back-pressure the workflow.
func (d *Dispatcher) Publish(ctx context.Context, evts ...events.Event) {
	for _, evt := range evts {
		select {
		case d.queue <- evt:
		default:
			logger.Warn(ctx, "event queue full, dropping event",
				zap.String("kind", string(evt.Kind)),
				zap.String("user_id", evt.UserID.String()))
		}
	}
}

// Start runs the delivery loop until the context is cancelled or Stop is
// called. Remaining queued events are drained on shutdown.
func (d *Dispatcher) Start(ctx context.Context) {
	defer close(d.done)
	for {
		select {
		case <-ctx.Done():
			d.drain()
			return
		case <-d.stop:
			d.drain()
			return
		case evt := <-d.queue:
			d.deliver(evt)
		}
	}
}

// Stop signals the delivery loop to drain and exit, then waits for it
func (d *Dispatcher) Stop() {
	close(d.stop)
	<-d.done
}

func (d *Dispatcher) drain() {
	for {
		select {
		case evt := <-d.queue:
			d.deliver(evt)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(evt events.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	if err := d.sink.Emit(ctx, evt); err != nil {
		logger.Error(ctx, "event delivery failed",
			zap.String("kind", string(evt.Kind)),
			zap.String("user_id", evt.UserID.String()),
			zap.Error(err))
	}
}
