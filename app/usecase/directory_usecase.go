package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"garage-hub/app/domain"
	"garage-hub/app/port"

	"github.com/google/uuid"
)

// DirectoryUsecase resolves tenant slugs to tenant records. Reads only;
// settings updates are the one exception and stay scoped to a single tenant.
type DirectoryUsecase struct {
	tenantRepo   port.TenantRepositoryPort
	storeTimeout time.Duration
	logger       *slog.Logger
	group        singleflight.Group
}

// NewDirectoryUsecase creates a new DirectoryUsecase instance
func NewDirectoryUsecase(tenantRepo port.TenantRepositoryPort, storeTimeout time.Duration, logger *slog.Logger) *DirectoryUsecase {
	return &DirectoryUsecase{
		tenantRepo:   tenantRepo,
		storeTimeout: storeTimeout,
		logger:       logger.With("component", "directory_usecase"),
	}
}

// Lookup resolves a slug to a tenant. An empty slug short-circuits to
// not-found without a store call: querying with an empty filter would match
// ambiguously. Concurrent lookups for the same slug are collapsed into one
// store read.
func (u *DirectoryUsecase) Lookup(ctx context.Context, slug string) (*domain.Tenant, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.ErrTenantNotFound
	}

	v, err, _ := u.group.Do(slug, func() (interface{}, error) {
		// The flight serves every collapsed caller, so it must not inherit
		// the initiating caller's cancellation. It carries its own deadline.
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.storeTimeout)
		defer cancel()
		return u.tenantRepo.GetBySlug(fctx, slug)
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Tenant), nil
}

// GetByID retrieves a tenant by ID
func (u *DirectoryUsecase) GetByID(ctx context.Context, tenantID uuid.UUID) (*domain.Tenant, error) {
	return u.tenantRepo.GetByID(ctx, tenantID)
}

// GetSettings returns the settings of the tenant behind a slug
func (u *DirectoryUsecase) GetSettings(ctx context.Context, slug string) (*domain.TenantSettings, error) {
	tenant, err := u.Lookup(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &tenant.Settings, nil
}

// UpdateSettings replaces the settings of the tenant behind a slug
func (u *DirectoryUsecase) UpdateSettings(ctx context.Context, slug string, settings domain.TenantSettings) error {
	tenant, err := u.Lookup(ctx, slug)
	if err != nil {
		return err
	}

	if err := u.tenantRepo.UpdateSettings(ctx, tenant.ID, settings); err != nil {
		return fmt.Errorf("failed to update settings for %s: %w", slug, err)
	}

	u.logger.Info("tenant settings updated", "slug", slug, "tenant_id", tenant.ID)
	return nil
}
