package simulator

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for ids that were never mounted, were
// unmounted, or expired.
var ErrSessionNotFound = errors.New("session not found")

// DefaultSessionTTL is how long an untouched session survives.
const DefaultSessionTTL = 30 * time.Minute

// Clock reports wall time. Tests substitute a manual clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Factory builds the session for a page view in the given language.
type Factory func(lang string) (*Session, error)

// RegistryConfig configures a Registry.
type RegistryConfig struct {
	// TTL is the idle time after which CleanupIdle drops a session.
	TTL time.Duration
	// Clock defaults to the system clock.
	Clock Clock
	// Factory defaults to New(DefaultConfig()) for every language.
	Factory Factory
}

type entry struct {
	mu        sync.Mutex
	session   *Session
	lang      string
	mountedAt time.Time
	lastSeen  time.Time
}

// Registry holds the live sessions of all open landing pages. Each session
// is advanced to wall time whenever it is accessed.
type Registry struct {
	config  RegistryConfig
	entries map[string]*entry
	mu      sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry(config RegistryConfig) *Registry {
	if config.TTL <= 0 {
		config.TTL = DefaultSessionTTL
	}
	if config.Clock == nil {
		config.Clock = systemClock{}
	}
	if config.Factory == nil {
		config.Factory = func(string) (*Session, error) {
			return New(DefaultConfig())
		}
	}

	return &Registry{
		config:  config,
		entries: make(map[string]*entry),
	}
}

// Mounted is the result of Create.
type Mounted struct {
	ID   string
	View View
}

// Create mounts a new session and returns its id and initial view.
func (r *Registry) Create(lang string) (*Mounted, error) {
	session, err := r.config.Factory(lang)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	now := r.config.Clock.Now()
	id := uuid.New().String()
	e := &entry{
		session:   session,
		lang:      lang,
		mountedAt: now,
		lastSeen:  now,
	}

	r.mu.Lock()
	r.entries[id] = e
	r.mu.Unlock()

	return &Mounted{ID: id, View: session.Snapshot()}, nil
}

// Update is the result of With.
type Update struct {
	View        View
	Lang        string
	Transitions []Transition
}

// With advances the session to wall time, applies fn, and returns the
// resulting view along with the transitions that happened on the way.
// fn may be nil for a plain poll.
func (r *Registry) With(id string, fn func(*Session)) (*Update, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session.Unmounted() {
		return nil, ErrSessionNotFound
	}

	now := r.config.Clock.Now()
	e.session.AdvanceTo(now.Sub(e.mountedAt))
	if fn != nil {
		fn(e.session)
	}
	e.lastSeen = now

	return &Update{
		View:        e.session.Snapshot(),
		Lang:        e.lang,
		Transitions: e.session.Transitions(),
	}, nil
}

// Remove unmounts and forgets a session.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	e, ok := r.entries[id]
	delete(r.entries, id)
	r.mu.Unlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	e.session.Unmount()
	e.mu.Unlock()
	return true
}

// CleanupIdle removes sessions untouched for longer than the TTL and returns
// how many were removed.
func (r *Registry) CleanupIdle() int {
	now := r.config.Clock.Now()

	r.mu.Lock()
	var expired []*entry
	for id, e := range r.entries {
		e.mu.Lock()
		idle := now.Sub(e.lastSeen) > r.config.TTL
		e.mu.Unlock()
		if idle {
			expired = append(expired, e)
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()

	for _, e := range expired {
		e.mu.Lock()
		e.session.Unmount()
		e.mu.Unlock()
	}
	return len(expired)
}

// Len counts live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
