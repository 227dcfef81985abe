package port

import (
	"context"

	"garage-hub/app/domain"

	"github.com/google/uuid"
)

// RoleVerifier resolves a user identity to a coarse role
type RoleVerifier interface {
	// Verify returns the user's role, defaulting to domain.DefaultRole when
	// no role row exists. Store failures surface distinctly from "no role".
	Verify(ctx context.Context, userID uuid.UUID) (domain.Role, error)
}

// RoleRepositoryPort defines role assignment data access
type RoleRepositoryPort interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RoleAssignment, error)
}
