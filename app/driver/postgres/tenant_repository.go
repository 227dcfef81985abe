package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"garage-hub/app/domain"

	"github.com/google/uuid"
)

// TenantRepository handles tenant reads and settings updates in PostgreSQL
type TenantRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewTenantRepository creates a new PostgreSQL tenant repository
func NewTenantRepository(db DatabaseIface, logger *slog.Logger) *TenantRepository {
	return &TenantRepository{
		db:     db,
		logger: logger.With("component", "tenant_repository"),
	}
}

const tenantColumns = `id, slug, name, owner_user_id, settings, created_at, updated_at, deleted_at`

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	query := `
		SELECT ` + tenantColumns + `
		FROM tenants WHERE id = $1 AND deleted_at IS NULL`

	row := r.db.QueryRow(ctx, query, id)
	tenant, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTenantNotFound
		}
		r.logger.Error("failed to get tenant by ID", "tenant_id", id, "error", err)
		return nil, domain.NewStoreError("tenant.get_by_id", err)
	}

	return tenant, nil
}

// GetBySlug retrieves a tenant by slug. A missing row maps to
// domain.ErrTenantNotFound; any other failure is a transient store error.
func (r *TenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	query := `
		SELECT ` + tenantColumns + `
		FROM tenants WHERE slug = $1 AND deleted_at IS NULL`

	row := r.db.QueryRow(ctx, query, slug)
	tenant, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTenantNotFound
		}
		r.logger.Error("failed to get tenant by slug", "slug", slug, "error", err)
		return nil, domain.NewStoreError("tenant.get_by_slug", err)
	}

	return tenant, nil
}

// ListByOwner retrieves the tenants owned by a user in creation order
func (r *TenantRepository) ListByOwner(ctx context.Context, ownerUserID uuid.UUID) ([]*domain.Tenant, error) {
	query := `
		SELECT ` + tenantColumns + `
		FROM tenants WHERE owner_user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, ownerUserID)
	if err != nil {
		r.logger.Error("failed to list tenants by owner", "owner_user_id", ownerUserID, "error", err)
		return nil, domain.NewStoreError("tenant.list_by_owner", err)
	}
	defer rows.Close()

	var tenants []*domain.Tenant
	for rows.Next() {
		tenant, err := scanTenant(rows)
		if err != nil {
			r.logger.Error("failed to scan tenant row", "error", err)
			return nil, domain.NewStoreError("tenant.list_by_owner", err)
		}
		tenants = append(tenants, tenant)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating tenant rows", "error", err)
		return nil, domain.NewStoreError("tenant.list_by_owner", err)
	}

	return tenants, nil
}

// First retrieves the oldest tenant in the store. Creation order keeps the
// fallback choice stable across reconciler runs.
func (r *TenantRepository) First(ctx context.Context) (*domain.Tenant, error) {
	query := `
		SELECT ` + tenantColumns + `
		FROM tenants WHERE deleted_at IS NULL
		ORDER BY created_at ASC LIMIT 1`

	row := r.db.QueryRow(ctx, query)
	tenant, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTenantNotFound
		}
		r.logger.Error("failed to get first tenant", "error", err)
		return nil, domain.NewStoreError("tenant.first", err)
	}

	return tenant, nil
}

// UpdateSettings replaces the settings of a tenant
func (r *TenantRepository) UpdateSettings(ctx context.Context, id uuid.UUID, settings domain.TenantSettings) error {
	query := `
		UPDATE tenants SET settings = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, settings, time.Now())
	if err != nil {
		r.logger.Error("failed to update tenant settings", "tenant_id", id, "error", err)
		return domain.NewStoreError("tenant.update_settings", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTenantNotFound
	}

	r.logger.Info("tenant settings updated", "tenant_id", id)
	return nil
}

func scanTenant(row pgx.Row) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := row.Scan(
		&tenant.ID,
		&tenant.Slug,
		&tenant.Name,
		&tenant.OwnerUserID,
		&tenant.Settings,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
		&tenant.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}
