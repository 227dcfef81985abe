package usecase

import (
	"log/slog"
	"sync"
	"time"

	"garage-hub/app/domain"
	"garage-hub/app/port"
)

const (
	sessionSweepInterval = time.Minute
	sessionIdleTTL       = 30 * time.Minute
)

// SessionContextRegistry owns one SessionContextProvider per authenticated
// session: init on first access after login, teardown at logout. Providers
// are injected into handlers rather than reached through ambient globals.
// Sessions that expire upstream without a teardown are swept out once idle.
type SessionContextRegistry struct {
	directory    port.TenantDirectory
	reconciler   port.Reconciler
	storeTimeout time.Duration
	logger       *slog.Logger

	mu        sync.Mutex
	providers map[string]*sessionEntry
}

type sessionEntry struct {
	provider *SessionContextProvider
	lastSeen time.Time
}

// NewSessionContextRegistry creates a registry and starts its idle sweep
func NewSessionContextRegistry(
	directory port.TenantDirectory,
	reconciler port.Reconciler,
	storeTimeout time.Duration,
	logger *slog.Logger,
) *SessionContextRegistry {
	r := &SessionContextRegistry{
		directory:    directory,
		reconciler:   reconciler,
		storeTimeout: storeTimeout,
		logger:       logger,
		providers:    make(map[string]*sessionEntry),
	}

	go r.cleanupSessions()
	return r
}

// ForSession returns the provider for the identity's session, creating it on
// first access
func (r *SessionContextRegistry) ForSession(identity *domain.UserIdentity) *SessionContextProvider {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.providers[identity.SessionID]
	if !ok {
		entry = &sessionEntry{
			provider: NewSessionContextProvider(r.directory, r.reconciler, identity, r.storeTimeout, r.logger),
		}
		r.providers[identity.SessionID] = entry
	}
	entry.lastSeen = time.Now()

	return entry.provider
}

// Teardown discards the provider for a session
func (r *SessionContextRegistry) Teardown(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.providers[sessionID]; ok {
		entry.provider.Teardown()
		delete(r.providers, sessionID)
	}
}

// cleanupSessions drops providers whose sessions went away without an
// explicit teardown
func (r *SessionContextRegistry) cleanupSessions() {
	for {
		time.Sleep(sessionSweepInterval)
		r.evictIdle(time.Now().Add(-sessionIdleTTL))
	}
}

func (r *SessionContextRegistry) evictIdle(cutoff time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for sessionID, entry := range r.providers {
		if entry.lastSeen.Before(cutoff) {
			entry.provider.Teardown()
			delete(r.providers, sessionID)
			r.logger.Debug("evicted idle session context", "session_id", sessionID)
		}
	}
}
