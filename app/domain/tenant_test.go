package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garage-hub/app/domain"
)

func TestTenant_NewTenant(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name       string
		slug       string
		tenantName string
		owner      uuid.UUID
		wantErr    bool
	}{
		{
			name:       "valid tenant creation",
			slug:       "test-garage",
			tenantName: "Test Garage",
			owner:      owner,
			wantErr:    false,
		},
		{
			name:       "empty slug",
			slug:       "",
			tenantName: "Test Garage",
			owner:      owner,
			wantErr:    true,
		},
		{
			name:       "empty name",
			slug:       "test-garage",
			tenantName: "",
			owner:      owner,
			wantErr:    true,
		},
		{
			name:       "whitespace only name",
			slug:       "test-garage",
			tenantName: "   ",
			owner:      owner,
			wantErr:    true,
		},
		{
			name:       "invalid slug with spaces",
			slug:       "test garage",
			tenantName: "Test Garage",
			owner:      owner,
			wantErr:    true,
		},
		{
			name:       "invalid slug with uppercase",
			slug:       "Test-Garage",
			tenantName: "Test Garage",
			owner:      owner,
			wantErr:    true,
		},
		{
			name:       "slug too long",
			slug:       "this-is-a-very-long-garage-slug-that-exceeds-the-maximum-allowed-length-of-100-characters-and-must-fail",
			tenantName: "Test Garage",
			owner:      owner,
			wantErr:    true,
		},
		{
			name:       "missing owner",
			slug:       "test-garage",
			tenantName: "Test Garage",
			owner:      uuid.UUID{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tenant, err := domain.NewTenant(tt.slug, tt.tenantName, tt.owner)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, tenant)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, tenant)
				assert.Equal(t, tt.slug, tenant.Slug)
				assert.Equal(t, tt.tenantName, tenant.Name)
				assert.Equal(t, tt.owner, tenant.OwnerUserID)
				assert.Equal(t, "USD", tenant.Settings.Currency)
				assert.False(t, tenant.CreatedAt.IsZero())
				assert.False(t, tenant.IsDeleted())
			}
		})
	}
}

func TestTenant_UpdateSettings(t *testing.T) {
	tenant, err := domain.NewTenant("test-garage", "Test Garage", uuid.New())
	require.NoError(t, err)

	before := tenant.UpdatedAt

	tenant.UpdateSettings(domain.TenantSettings{
		Currency: "EUR",
		Timezone: "Europe/Berlin",
		Language: "de",
	})

	assert.Equal(t, "EUR", tenant.Settings.Currency)
	assert.Equal(t, "Europe/Berlin", tenant.Settings.Timezone)
	assert.False(t, tenant.UpdatedAt.Before(before))
}

func TestTenant_IsOwnedBy(t *testing.T) {
	owner := uuid.New()
	tenant, err := domain.NewTenant("test-garage", "Test Garage", owner)
	require.NoError(t, err)

	assert.True(t, tenant.IsOwnedBy(owner))
	assert.False(t, tenant.IsOwnedBy(uuid.New()))
}
