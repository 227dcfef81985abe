package port

import (
	"context"

	"garage-hub/app/domain"

	"github.com/google/uuid"
)

// TenantDirectory defines the read side of tenant resolution
type TenantDirectory interface {
	// Lookup resolves a slug to a tenant. An empty slug short-circuits to
	// domain.ErrTenantNotFound without touching the store.
	Lookup(ctx context.Context, slug string) (*domain.Tenant, error)
	GetByID(ctx context.Context, tenantID uuid.UUID) (*domain.Tenant, error)
	GetSettings(ctx context.Context, slug string) (*domain.TenantSettings, error)
	UpdateSettings(ctx context.Context, slug string, settings domain.TenantSettings) error
}

// TenantRepositoryPort defines tenant data access
type TenantRepositoryPort interface {
	GetByID(ctx context.Context, tenantID uuid.UUID) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	// ListByOwner returns the tenants owned by a user in creation order.
	ListByOwner(ctx context.Context, ownerUserID uuid.UUID) ([]*domain.Tenant, error)
	// First returns the oldest tenant in the store, or domain.ErrTenantNotFound
	// when the store holds no tenants at all.
	First(ctx context.Context) (*domain.Tenant, error)
	UpdateSettings(ctx context.Context, tenantID uuid.UUID, settings domain.TenantSettings) error
}
