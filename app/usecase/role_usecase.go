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

// RoleUsecase resolves a user identity to a coarse role
type RoleUsecase struct {
	roleRepo port.RoleRepositoryPort
	logger   *slog.Logger
}

// NewRoleUsecase creates a new RoleUsecase instance
func NewRoleUsecase(roleRepo port.RoleRepositoryPort, logger *slog.Logger) *RoleUsecase {
	return &RoleUsecase{
		roleRepo: roleRepo,
		logger:   logger.With("component", "role_usecase"),
	}
}

// Verify returns the user's role. A user with no role row is the
// least-privileged role, never a fault; a store failure stays a failure.
func (u *RoleUsecase) Verify(ctx context.Context, userID uuid.UUID) (domain.Role, error) {
	assignment, err := u.roleRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return domain.DefaultRole, nil
		}
		return "", fmt.Errorf("role lookup failed: %w", err)
	}

	if !assignment.Role.Valid() {
		u.logger.Warn("unknown role in store, treating as default",
			"user_id", userID, "role", assignment.Role)
		return domain.DefaultRole, nil
	}

	return assignment.Role, nil
}
