package session

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/aretw0/butterfly/internal/logging"
	"github.com/aretw0/butterfly/internal/runtime"
	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/google/uuid"
)

// Factory builds a fresh engine for a session starting as actor.
type Factory[E any] func(actor domain.Actor) *runtime.Engine[E]

// entry holds one engine and the mutex serializing access to it.
type entry[E any] struct {
	mu      sync.Mutex
	engine  *runtime.Engine[E]
	deleted bool
}

// Manager orchestrates session access, ensuring safe concurrent operations.
type Manager[E any] struct {
	factory Factory[E]

	mu       sync.Mutex // Global lock for the map
	sessions map[string]*entry[E]

	newID  func() string
	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*options)

type options struct {
	newID  func() string
	logger *slog.Logger
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		o.newID = fn
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewManager creates a new Session Manager that builds engines with factory.
func NewManager[E any](factory Factory[E], opts ...Option) *Manager[E] {
	o := options{
		newID:  uuid.NewString,
		logger: logging.NewNop(), // Default to no-op
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager[E]{
		factory:  factory,
		sessions: make(map[string]*entry[E]),
		newID:    o.newID,
		logger:   o.logger,
	}
}

// Create starts a new session viewed by actor and returns its ID.
func (m *Manager[E]) Create(actor domain.Actor) string {
	e := &entry[E]{engine: m.factory(actor)}

	m.mu.Lock()
	id := m.newID()
	for _, taken := m.sessions[id]; taken; _, taken = m.sessions[id] {
		id = m.newID()
	}
	m.sessions[id] = e
	m.mu.Unlock()

	m.logger.Debug("session created", "session_id", id, "actor", actor)
	return id
}

// With runs fn while holding the lock for the session.
func (m *Manager[E]) With(ctx context.Context, id string, fn func(context.Context, *runtime.Engine[E]) error) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Deleted while we waited for the lock.
	if e.deleted {
		return fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}
	return fn(ctx, e.engine)
}

// Delete removes the session. It waits for any call in progress.
func (m *Manager[E]) Delete(id string) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}

	e.mu.Lock()
	e.deleted = true
	e.mu.Unlock()

	m.logger.Debug("session deleted", "session_id", id)
	return nil
}

// List returns the live session IDs, sorted.
func (m *Manager[E]) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len reports the number of live sessions.
func (m *Manager[E]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
