package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"garage-hub/app/domain"

	"github.com/google/uuid"
)

// RoleRepository handles role assignment reads in PostgreSQL
type RoleRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewRoleRepository creates a new PostgreSQL role repository
func NewRoleRepository(db DatabaseIface, logger *slog.Logger) *RoleRepository {
	return &RoleRepository{
		db:     db,
		logger: logger.With("component", "role_repository"),
	}
}

// GetByUserID retrieves the role assignment for a user. A missing row maps
// to domain.ErrRoleNotFound so the verifier can apply the default role;
// store failures surface as transient errors.
func (r *RoleRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RoleAssignment, error) {
	query := `
		SELECT user_id, role, created_at
		FROM role_assignments WHERE user_id = $1`

	var assignment domain.RoleAssignment
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&assignment.UserID,
		&assignment.Role,
		&assignment.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		r.logger.Error("failed to get role assignment", "user_id", userID, "error", err)
		return nil, domain.NewStoreError("role.get_by_user_id", err)
	}

	return &assignment, nil
}
