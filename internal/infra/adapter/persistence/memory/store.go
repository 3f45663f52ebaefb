// Package memory provides the volatile, single-process entity store.
// One RWMutex guards all three collections: mutations run one at a time under the
// write lock, so uniqueness checks and cascades always see a consistent snapshot,
// and readers never observe a partially applied mutation.
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"

	"postboard/internal/domain/entity"
	"postboard/internal/observability/metrics"
	"postboard/internal/observability/tracing"
	"postboard/internal/repository"
)

var _ repository.Store = (*Store)(nil)

// Store is the in-memory implementation of repository.Store.
type Store struct {
	mu       sync.RWMutex
	accounts collection[entity.Account]
	posts    collection[entity.Post]
	comments collection[entity.Comment]
	emails   map[string]string // email -> account id

	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID generator, mainly for deterministic tests.
// The generator must never return an id it has returned before.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		accounts: newCollection[entity.Account](),
		posts:    newCollection[entity.Post](),
		comments: newCollection[entity.Comment](),
		emails:   make(map[string]string),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Counts returns the current size of each collection.
func (s *Store) Counts() (accounts, posts, comments int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts.len(), s.posts.len(), s.comments.len()
}

// nextID returns a fresh id that is not used by any collection.
// Callers must hold the write lock.
func (s *Store) nextID() string {
	for {
		id := s.newID()
		if !s.accounts.has(id) && !s.posts.has(id) && !s.comments.has(id) {
			return id
		}
	}
}

// begin starts a span for op and returns a func that records the outcome.
func (s *Store) begin(ctx context.Context, op string) func(errp *error) {
	_, span := tracing.GetTracer().Start(ctx, "store."+op)
	start := time.Now()

	return func(errp *error) {
		var err error
		if errp != nil {
			err = *errp
		}
		metrics.RecordStoreOperation(op, resultLabel(err), time.Since(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// syncGauges publishes collection sizes. Callers must hold the lock.
func (s *Store) syncGauges() {
	metrics.SetEntityCounts(s.accounts.len(), s.posts.len(), s.comments.len())
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, entity.ErrNotFound):
		return "not_found"
	case errors.Is(err, entity.ErrConflict):
		return "conflict"
	case errors.Is(err, entity.ErrValidation):
		return "validation"
	default:
		return "error"
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
