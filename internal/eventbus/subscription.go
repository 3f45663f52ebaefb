package eventbus

import (
	"context"
	"errors"
	"iter"
	"sync"

	"postboard/internal/observability/metrics"
)

// ErrSubscriptionClosed is returned by Next once the subscription is cancelled.
var ErrSubscriptionClosed = errors.New("subscription closed")

// Subscription yields the events of one topic in publish order until cancelled.
type Subscription struct {
	topic  Topic
	events chan Event
	done   chan struct{}

	once        sync.Once
	unsubscribe func()
	release     func(*Subscription)
}

// Topic returns the subscribed topic.
func (s *Subscription) Topic() Topic {
	return s.topic
}

// Done is closed when the subscription is cancelled.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Next blocks until the next event arrives, the subscription is cancelled,
// or ctx is done. No event is returned once Cancel has completed.
func (s *Subscription) Next(ctx context.Context) (Event, error) {
	select {
	case <-s.done:
		return Event{}, ErrSubscriptionClosed
	default:
	}

	select {
	case <-s.done:
		return Event{}, ErrSubscriptionClosed
	case <-ctx.Done():
		return Event{}, ctx.Err()
	case ev := <-s.events:
		// A buffered event may race with Cancel; cancellation wins.
		select {
		case <-s.done:
			return Event{}, ErrSubscriptionClosed
		default:
		}
		metrics.RecordEventDelivered(s.topic.Kind().String())
		return ev, nil
	}
}

// All returns the subscription as a lazy sequence that ends on cancel or ctx done.
func (s *Subscription) All(ctx context.Context) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev, err := s.Next(ctx)
			if err != nil {
				return
			}
			if !yield(ev) {
				return
			}
		}
	}
}

// Cancel stops delivery. It is safe to call more than once and from any goroutine.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		close(s.done)
		s.unsubscribe()
		s.release(s)
		metrics.SubscriptionClosed(s.topic.Kind().String())
	})
}

// deliver runs on the hub's per-subscriber goroutine. Blocking here only holds back
// this subscriber; the hub keeps queueing later events for it.
func (s *Subscription) deliver(_ string, data interface{}) {
	ev, ok := data.(Event)
	if !ok {
		return
	}
	select {
	case <-s.done:
		return
	default:
	}
	select {
	case s.events <- ev:
	case <-s.done:
	}
}
