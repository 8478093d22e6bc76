package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"growcore.backend/internal/domain/events"
)

// recordingSink collects delivered events without testify's call matching,
// which gets noisy for asynchronous delivery.
type recordingSink struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (s *recordingSink) Emit(_ context.Context, evt events.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
	return s.err
}

func (s *recordingSink) delivered() []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]events.Event, len(s.events))
	copy(out, s.events)
	return out
}

func TestDispatcher_DeliversPublishedEvents(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Start(ctx)

	userID := uuid.New()
	d.Publish(ctx,
		events.New(events.KindApplied, userID, "Application Submitted", "received"),
		events.New(events.KindScored, userID, "Assessment Scored", "scored"),
	)

	require.Eventually(t, func() bool {
		return len(sink.delivered()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	got := sink.delivered()
	require.Equal(t, events.KindApplied, got[0].Kind)
	require.Equal(t, events.KindScored, got[1].Kind)

	d.Stop()
}

func TestDispatcher_StopDrainsQueue(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	// Enqueue before the worker starts so everything is still queued
	for i := 0; i < 10; i++ {
		d.Publish(context.Background(), events.New(events.KindWelcome, uuid.New(), "Welcome", "hi"))
	}

	go d.Start(context.Background())
	d.Stop()

	require.Len(t, sink.delivered(), 10)
}

func TestDispatcher_SinkFailureDoesNotStopDelivery(t *testing.T) {
	sink := &recordingSink{err: errors.New("store down")}
	d := NewDispatcher(sink)

	go d.Start(context.Background())

	d.Publish(context.Background(),
		events.New(events.KindCertified, uuid.New(), "Certification Earned", "congrats"),
		events.New(events.KindCertified, uuid.New(), "Certification Earned", "congrats"),
	)

	require.Eventually(t, func() bool {
		return len(sink.delivered()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	d.Stop()
}

func TestDispatcher_PublishNeverBlocksWhenFull(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	// Worker never started; overfill the queue and make sure Publish returns
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < dispatchBuffer+50; i++ {
			d.Publish(context.Background(), events.New(events.KindWelcome, uuid.New(), "Welcome", "hi"))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
}
