package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/runfall/CheatKeeper_Go/internal/domain"
	"github.com/runfall/CheatKeeper_Go/internal/random"
	"github.com/runfall/CheatKeeper_Go/internal/unlock"
)

// Session binds one unlock engine to the id handed out to the host.
type Session struct {
	ID        string
	Engine    *unlock.Engine
	CreatedAt time.Time
}

// Manager hands out independent per-player engines. Sessions live in a
// bounded LRU cache; activation state is process-lifetime only, so an
// evicted session is simply gone and the player starts over.
type Manager struct {
	specs     []unlock.Spec
	sessions  *lru.Cache[string, *Session]
	newSource func() random.Source
}

// NewManager validates the authored catalog once up front so a malformed
// catalog fails at startup rather than on the first session. newSource is
// called per session so each engine owns its random source; pass nil for
// the default shared generator.
func NewManager(specs []unlock.Spec, capacity int, newSource func() random.Source) (*Manager, error) {
	if newSource == nil {
		newSource = func() random.Source { return random.New() }
	}

	// Throwaway build to surface authoring defects early.
	if _, err := unlock.NewCatalog(specs, newSource()); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	sessions, err := lru.NewWithEvict(capacity, func(id string, _ *Session) {
		slog.Debug("Session evicted", "session_id", id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}

	return &Manager{
		specs:     specs,
		sessions:  sessions,
		newSource: newSource,
	}, nil
}

// Create builds a fresh engine with newly generated secret codes and
// registers it under a new session id.
func (m *Manager) Create() (*Session, error) {
	catalog, err := unlock.NewCatalog(m.specs, m.newSource())
	if err != nil {
		// Specs were validated at construction; this means they were mutated.
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	s := &Session{
		ID:        uuid.NewString(),
		Engine:    unlock.NewEngine(catalog, m.newSource()),
		CreatedAt: time.Now(),
	}
	m.sessions.Add(s.ID, s)
	return s, nil
}

// Get returns the session for id, or domain.ErrSessionNotFound.
func (m *Manager) Get(id string) (*Session, error) {
	s, ok := m.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return s, nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}
