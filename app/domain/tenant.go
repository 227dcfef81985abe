package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TenantSettings holds garage-scoped preferences.
type TenantSettings struct {
	Currency string         `json:"currency"`
	Timezone string         `json:"timezone"`
	Language string         `json:"language"`
	Custom   map[string]any `json:"custom,omitempty"`
}

// Tenant represents a garage, the unit of isolation for all business data.
type Tenant struct {
	ID          uuid.UUID      `json:"id"`
	Slug        string         `json:"slug"`
	Name        string         `json:"name"`
	OwnerUserID uuid.UUID      `json:"owner_user_id"`
	Settings    TenantSettings `json:"settings"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   *time.Time     `json:"deleted_at,omitempty"`
}

// slugRegex validates tenant slugs (lowercase, alphanumeric, hyphens only)
var slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

// NewTenant creates a new tenant with validation
func NewTenant(slug, name string, owner uuid.UUID) (*Tenant, error) {
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}

	if len(slug) > 100 {
		return nil, fmt.Errorf("slug must be 100 characters or less")
	}

	if !slugRegex.MatchString(slug) {
		return nil, fmt.Errorf("slug must contain only lowercase letters, numbers, and hyphens")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if owner == (uuid.UUID{}) {
		return nil, fmt.Errorf("owner user ID is required")
	}

	now := time.Now()

	tenant := &Tenant{
		ID:          uuid.New(),
		Slug:        slug,
		Name:        name,
		OwnerUserID: owner,
		Settings: TenantSettings{
			Currency: "USD",
			Timezone: "UTC",
			Language: "en",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	return tenant, nil
}

// UpdateSettings replaces the tenant settings
func (t *Tenant) UpdateSettings(settings TenantSettings) {
	t.Settings = settings
	t.UpdatedAt = time.Now()
}

// IsDeleted returns true if the tenant is soft deleted
func (t *Tenant) IsDeleted() bool {
	return t.DeletedAt != nil
}

// IsOwnedBy reports whether the given user owns this tenant
func (t *Tenant) IsOwnedBy(userID uuid.UUID) bool {
	return t.OwnerUserID == userID
}

// UpdateSettingsRequest represents a tenant settings update request
type UpdateSettingsRequest struct {
	Currency string         `json:"currency" validate:"required,currency_code"`
	Timezone string         `json:"timezone" validate:"required,max=64"`
	Language string         `json:"language" validate:"required,min=2,max=8"`
	Custom   map[string]any `json:"custom,omitempty"`
}
