package port

import (
	"context"

	"garage-hub/app/domain"

	"github.com/google/uuid"
)

// ProfileRepositoryPort defines profile data access. AssignTenantIfUnset and
// SetAssignedTenant are the only two writers of the assignment field in the
// whole system.
type ProfileRepositoryPort interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	// AssignTenantIfUnset binds the tenant only when no assignment exists yet.
	// Returns false without error when another writer got there first.
	AssignTenantIfUnset(ctx context.Context, userID, tenantID uuid.UUID) (bool, error)
	// SetAssignedTenant unconditionally overwrites the assignment.
	SetAssignedTenant(ctx context.Context, userID, tenantID uuid.UUID) error
}
