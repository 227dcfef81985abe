package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"garage-hub/app/domain"
	"garage-hub/app/port"

	"github.com/google/uuid"
)

// ReconcilerUsecase resolves and persists a user's tenant assignment. It is
// invoked on every tenant-scoped navigation, so a run against an unchanged
// profile must be a pure no-op: the "already assigned" guard comes before any
// write, and the write itself is conditional at the store.
type ReconcilerUsecase struct {
	tenantRepo  port.TenantRepositoryPort
	profileRepo port.ProfileRepositoryPort
	roles       port.RoleVerifier
	authGateway port.AuthGateway
	logger      *slog.Logger
}

// NewReconcilerUsecase creates a new ReconcilerUsecase instance
func NewReconcilerUsecase(
	tenantRepo port.TenantRepositoryPort,
	profileRepo port.ProfileRepositoryPort,
	roles port.RoleVerifier,
	authGateway port.AuthGateway,
	logger *slog.Logger,
) *ReconcilerUsecase {
	return &ReconcilerUsecase{
		tenantRepo:  tenantRepo,
		profileRepo: profileRepo,
		roles:       roles,
		authGateway: authGateway,
		logger:      logger.With("component", "reconciler_usecase"),
	}
}

// Reconcile resolves the tenant assignment for the acting user.
//
// No identity means the caller must redirect to authentication. A failed role
// lookup is reported as-is with no mutation. A non-administrator reaching the
// owner entry point is signed out and denied regardless of any existing
// assignment. Administrators get their first owned tenant, or the oldest
// tenant in the store as a fallback, or a no-tenant-available report when the
// store is empty.
func (u *ReconcilerUsecase) Reconcile(ctx context.Context, identity *domain.UserIdentity, ownerEntryPoint bool) (*domain.Resolution, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}

	role, err := u.roles.Verify(ctx, identity.ID)
	if err != nil {
		// Role unknown: transient, nothing written.
		return nil, fmt.Errorf("cannot reconcile without role: %w", err)
	}

	if !role.IsAdministrator() && ownerEntryPoint {
		// Security boundary: non-administrators must never be auto-assigned
		// a tenant through the owner entry point.
		u.logger.Warn("non-administrator at owner entry point, revoking session",
			"user_id", identity.ID, "role", role)
		if err := u.authGateway.SignOut(ctx, identity.SessionID); err != nil {
			u.logger.Error("forced sign-out failed", "user_id", identity.ID, "error", err)
		}
		return nil, domain.ErrAccessDenied
	}

	profile, err := u.profileRepo.GetByUserID(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("profile lookup failed: %w", err)
	}

	if profile.HasAssignedTenant() {
		return &domain.Resolution{
			TenantID: profile.AssignedTenantID,
			Outcome:  domain.OutcomeAlreadyAssigned,
		}, nil
	}

	if !role.IsAdministrator() {
		// Nothing to auto-assign for non-administrators outside the owner
		// flow; they pick a garage explicitly.
		return &domain.Resolution{Outcome: domain.OutcomeNoTenantAvailable}, nil
	}

	owned, err := u.tenantRepo.ListByOwner(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("owned tenant lookup failed: %w", err)
	}

	if len(owned) > 0 {
		// First owned tenant in creation order.
		return u.assign(ctx, identity.ID, owned[0].ID, domain.OutcomeAssignedOwned)
	}

	fallback, err := u.tenantRepo.First(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			u.logger.Info("no tenant available for administrator", "user_id", identity.ID)
			return &domain.Resolution{Outcome: domain.OutcomeNoTenantAvailable}, nil
		}
		return nil, fmt.Errorf("fallback tenant lookup failed: %w", err)
	}

	return u.assign(ctx, identity.ID, fallback.ID, domain.OutcomeAssignedFallback)
}

// assign persists the assignment with the store-side "still unset" guard.
// Losing the race is not an error; the winner's value is re-read and
// returned.
func (u *ReconcilerUsecase) assign(ctx context.Context, userID, tenantID uuid.UUID, outcome domain.ResolutionOutcome) (*domain.Resolution, error) {
	applied, err := u.profileRepo.AssignTenantIfUnset(ctx, userID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("tenant assignment failed: %w", err)
	}

	if !applied {
		profile, err := u.profileRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("assignment re-read failed: %w", err)
		}
		if !profile.HasAssignedTenant() {
			// Unset and yet not assignable: the profile row vanished between
			// the read and the write.
			return nil, domain.ErrProfileNotFound
		}
		return &domain.Resolution{
			TenantID: profile.AssignedTenantID,
			Outcome:  domain.OutcomeAlreadyAssigned,
		}, nil
	}

	u.logger.Info("tenant assignment reconciled",
		"user_id", userID, "tenant_id", tenantID, "outcome", outcome)

	return &domain.Resolution{TenantID: &tenantID, Outcome: outcome}, nil
}
