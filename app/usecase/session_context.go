package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"garage-hub/app/domain"
	"garage-hub/app/port"
)

// RefreshRequest carries the inputs of one resolution pass
type RefreshRequest struct {
	ExplicitSlug string
	Hostname     string
	// AdminFlow marks the administrator-assignment flow; only then does the
	// refresh run the reconciler after the directory lookup.
	AdminFlow bool
}

// SessionContextProvider holds the resolved tenant context for one
// authenticated session. Reads see the previous context while a refresh is
// in flight, and when refreshes overlap only the most recently initiated one
// is applied: a superseded result is discarded on completion, never applied
// out of order. The single-threaded cooperative model of the original UI is
// rendered here as a mutex around the swap plus a generation counter.
type SessionContextProvider struct {
	directory    port.TenantDirectory
	reconciler   port.Reconciler
	storeTimeout time.Duration
	logger       *slog.Logger

	mu         sync.Mutex
	identity   *domain.UserIdentity
	generation uint64
	inFlight   int
	current    domain.TenantContext
	lastErr    error
}

// NewSessionContextProvider creates a provider for one session
func NewSessionContextProvider(
	directory port.TenantDirectory,
	reconciler port.Reconciler,
	identity *domain.UserIdentity,
	storeTimeout time.Duration,
	logger *slog.Logger,
) *SessionContextProvider {
	return &SessionContextProvider{
		directory:    directory,
		reconciler:   reconciler,
		identity:     identity,
		storeTimeout: storeTimeout,
		logger:       logger.With("component", "session_context"),
		current:      domain.EmptyTenantContext(),
	}
}

// Current returns the latest resolved context together with the latest
// error, so callers can show stale data with an error banner instead of
// discarding state.
func (p *SessionContextProvider) Current() (domain.TenantContext, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current, p.lastErr
}

// Loading reports whether a refresh is outstanding
func (p *SessionContextProvider) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inFlight > 0
}

// Teardown discards the session state. Outstanding refreshes are left to
// complete; their results are dropped by the generation guard.
func (p *SessionContextProvider) Teardown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generation++
	p.identity = nil
	p.current = domain.EmptyTenantContext()
	p.lastErr = nil
}

// Refresh re-runs the resolution chain and atomically replaces the cached
// context. When the result is a displayable non-fault state (no such garage,
// no tenant available) the new context is applied and the state is surfaced
// alongside it; a transient failure keeps the previous context visible.
func (p *SessionContextProvider) Refresh(ctx context.Context, req RefreshRequest) (domain.TenantContext, error) {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.inFlight++
	identity := p.identity
	p.mu.Unlock()

	next, err := p.resolve(ctx, identity, req)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight--

	if gen != p.generation {
		// Superseded by a later refresh; last initiated wins.
		p.logger.Debug("discarding superseded refresh", "generation", gen)
		return p.current, p.lastErr
	}

	if err != nil && !domain.IsDisplayState(err) {
		p.lastErr = err
		return p.current, err
	}

	p.current = next
	p.lastErr = err
	return next, err
}

// resolve runs the strictly sequential lookup chain:
// slug -> tenant record -> (admin flow) reconciliation.
func (p *SessionContextProvider) resolve(ctx context.Context, identity *domain.UserIdentity, req RefreshRequest) (domain.TenantContext, error) {
	host := domain.ParseHostname(req.Hostname)
	slug := domain.ResolveSlug(req.ExplicitSlug, host)

	if slug != "" {
		tenant, err := p.lookup(ctx, slug)
		switch {
		case err == nil:
			source := domain.SourceSubdomain
			if strings.TrimSpace(req.ExplicitSlug) != "" {
				source = domain.SourceExplicit
			}
			return domain.TenantContext{
				TenantID:   &tenant.ID,
				TenantName: tenant.Name,
				Source:     source,
				ResolvedAt: time.Now(),
			}, nil
		case errors.Is(err, domain.ErrTenantNotFound) && !req.AdminFlow:
			// No such garage is a display state, not a fault.
			return domain.EmptyTenantContext(), domain.ErrTenantNotFound
		case errors.Is(err, domain.ErrTenantNotFound):
			// Admin flow falls through to reconciliation.
		default:
			return domain.EmptyTenantContext(), err
		}
	}

	if !req.AdminFlow {
		return domain.EmptyTenantContext(), nil
	}

	resolution, err := p.reconcile(ctx, identity)
	if err != nil {
		return domain.EmptyTenantContext(), err
	}

	if resolution.Outcome == domain.OutcomeNoTenantAvailable {
		return domain.EmptyTenantContext(), domain.ErrNoTenantAvailable
	}

	tenant, err := p.tenantByID(ctx, resolution)
	if err != nil {
		return domain.EmptyTenantContext(), err
	}

	return domain.TenantContext{
		TenantID:   resolution.TenantID,
		TenantName: tenant.Name,
		Source:     domain.SourceProfile,
		ResolvedAt: time.Now(),
	}, nil
}

func (p *SessionContextProvider) lookup(ctx context.Context, slug string) (*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, p.storeTimeout)
	defer cancel()
	return p.directory.Lookup(ctx, slug)
}

func (p *SessionContextProvider) reconcile(ctx context.Context, identity *domain.UserIdentity) (*domain.Resolution, error) {
	ctx, cancel := context.WithTimeout(ctx, p.storeTimeout)
	defer cancel()
	return p.reconciler.Reconcile(ctx, identity, true)
}

func (p *SessionContextProvider) tenantByID(ctx context.Context, resolution *domain.Resolution) (*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, p.storeTimeout)
	defer cancel()
	return p.directory.GetByID(ctx, *resolution.TenantID)
}
