// Package eventbus provides the topic-keyed publish/subscribe channel used to stream
// change events. It sits on top of a juju pubsub SimpleHub, which queues events per
// subscriber without bound, so publishers never wait for slow consumers.
package eventbus

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/juju/pubsub/v2"

	"postboard/internal/observability/metrics"
)

// ErrBusClosed is returned by Subscribe after Close.
var ErrBusClosed = errors.New("event bus closed")

// DefaultBuffer is the number of events a subscription holds ahead of its reader.
const DefaultBuffer = 16

// Config configures a Bus.
type Config struct {
	// Buffer is the per-subscription channel size, DefaultBuffer when unset.
	// Events beyond it stay queued in the hub.
	Buffer int
	// Logger receives hub diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Bus is a topic-keyed broadcast channel.
type Bus struct {
	hub    *pubsub.SimpleHub
	buffer int
	logger *slog.Logger

	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	closed bool
}

// New creates a bus.
func New(cfg Config) *Bus {
	if cfg.Buffer <= 0 {
		cfg.Buffer = DefaultBuffer
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	logger := cfg.Logger.With(slog.String("component", "eventbus"))

	return &Bus{
		hub:    pubsub.NewSimpleHub(&pubsub.SimpleHubConfig{Logger: hubLogger{logger}}),
		buffer: cfg.Buffer,
		logger: logger,
		subs:   make(map[*Subscription]struct{}),
	}
}

// Publish delivers ev to every active subscriber of topic and returns immediately.
// Events published after Close are dropped.
func (b *Bus) Publish(topic Topic, ev Event) {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		b.logger.Debug("event dropped: bus closed", slog.String("topic", topic.String()))
		return
	}

	ev.Topic = topic
	_ = b.hub.Publish(topic.String(), ev)
	metrics.RecordEventPublished(topic.Kind().String(), string(ev.Mutation))
}

// Subscribe opens a subscription to exactly one topic.
// Only events published after Subscribe returns are delivered.
func (b *Bus) Subscribe(topic Topic) (*Subscription, error) {
	if topic.Kind() != TopicPosts && topic.Kind() != TopicComments {
		return nil, fmt.Errorf("subscribe: invalid topic %q", topic.String())
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBusClosed
	}

	sub := &Subscription{
		topic:  topic,
		events: make(chan Event, b.buffer),
		done:   make(chan struct{}),
	}
	sub.unsubscribe = b.hub.Subscribe(topic.String(), sub.deliver)
	sub.release = b.release
	b.subs[sub] = struct{}{}
	metrics.SubscriptionOpened(topic.Kind().String())

	return sub, nil
}

// Close cancels every live subscription and rejects new ones.
func (b *Bus) Close() {
	b.mu.Lock()
	b.closed = true
	subs := make([]*Subscription, 0, len(b.subs))
	for s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.Unlock()

	for _, s := range subs {
		s.Cancel()
	}
}

// Len returns the number of live subscriptions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Bus) release(s *Subscription) {
	b.mu.Lock()
	delete(b.subs, s)
	b.mu.Unlock()
}

// hubLogger adapts slog to the printf-style logger the hub expects.
type hubLogger struct {
	logger *slog.Logger
}

func (l hubLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l hubLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l hubLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l hubLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Tracef maps to debug; slog has no trace level.
func (l hubLogger) Tracef(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
