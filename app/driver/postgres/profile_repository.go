package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"garage-hub/app/domain"

	"github.com/google/uuid"
)

// foreignKeyViolation is the PostgreSQL error code for a dangling reference
const foreignKeyViolation = "23503"

// ProfileRepository handles user profile operations in PostgreSQL
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// GetByUserID retrieves a profile by its user identity
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	query := `
		SELECT user_id, assigned_tenant_id, first_name, last_name, created_at, updated_at
		FROM profiles WHERE user_id = $1`

	var profile domain.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.AssignedTenantID,
		&profile.FirstName,
		&profile.LastName,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to get profile", "user_id", userID, "error", err)
		return nil, domain.NewStoreError("profile.get_by_user_id", err)
	}

	return &profile, nil
}

// AssignTenantIfUnset binds the tenant only when the profile has no
// assignment yet. The guard runs in the store, so two concurrent
// reconciliations collapse to first-writer-wins instead of overwriting
// each other.
func (r *ProfileRepository) AssignTenantIfUnset(ctx context.Context, userID, tenantID uuid.UUID) (bool, error) {
	query := `
		UPDATE profiles SET assigned_tenant_id = $2, updated_at = $3
		WHERE user_id = $1 AND assigned_tenant_id IS NULL`

	tag, err := r.db.Exec(ctx, query, userID, tenantID, time.Now())
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrInvalidReference
		}
		r.logger.Error("failed to assign tenant", "user_id", userID, "tenant_id", tenantID, "error", err)
		return false, domain.NewStoreError("profile.assign_tenant_if_unset", err)
	}

	applied := tag.RowsAffected() > 0
	if applied {
		r.logger.Info("tenant assigned to profile", "user_id", userID, "tenant_id", tenantID)
	}
	return applied, nil
}

// SetAssignedTenant unconditionally overwrites the profile assignment
func (r *ProfileRepository) SetAssignedTenant(ctx context.Context, userID, tenantID uuid.UUID) error {
	query := `
		UPDATE profiles SET assigned_tenant_id = $2, updated_at = $3
		WHERE user_id = $1`

	tag, err := r.db.Exec(ctx, query, userID, tenantID, time.Now())
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		r.logger.Error("failed to set assigned tenant", "user_id", userID, "tenant_id", tenantID, "error", err)
		return domain.NewStoreError("profile.set_assigned_tenant", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	r.logger.Info("tenant selection persisted", "user_id", userID, "tenant_id", tenantID)
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
