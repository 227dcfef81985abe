package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserProfile is the one-to-one companion of an identity. Its
// AssignedTenantID is the single mutable piece of tenant-assignment state:
// the reconciler and the explicit selector are the only writers.
type UserProfile struct {
	UserID           uuid.UUID  `json:"user_id"`
	AssignedTenantID *uuid.UUID `json:"assigned_tenant_id,omitempty"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// HasAssignedTenant reports whether the profile is bound to a tenant
func (p *UserProfile) HasAssignedTenant() bool {
	return p.AssignedTenantID != nil
}

// AssignTenant binds the profile to a tenant
func (p *UserProfile) AssignTenant(tenantID uuid.UUID) {
	p.AssignedTenantID = &tenantID
	p.UpdatedAt = time.Now()
}

// FullName returns the display name of the profile
func (p *UserProfile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
