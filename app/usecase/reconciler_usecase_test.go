package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"garage-hub/app/domain"
	mock_port "garage-hub/app/mocks"
	"garage-hub/app/utils/logger"
)

type reconcilerMocks struct {
	tenants  *mock_port.MockTenantRepositoryPort
	profiles *mock_port.MockProfileRepositoryPort
	roles    *mock_port.MockRoleVerifier
	auth     *mock_port.MockAuthGateway
}

func newReconcilerForTest(t *testing.T) (*ReconcilerUsecase, reconcilerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := reconcilerMocks{
		tenants:  mock_port.NewMockTenantRepositoryPort(ctrl),
		profiles: mock_port.NewMockProfileRepositoryPort(ctrl),
		roles:    mock_port.NewMockRoleVerifier(ctrl),
		auth:     mock_port.NewMockAuthGateway(ctrl),
	}

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	uc := NewReconcilerUsecase(mocks.tenants, mocks.profiles, mocks.roles, mocks.auth, testLogger)
	return uc, mocks
}

func testIdentity() *domain.UserIdentity {
	return &domain.UserIdentity{
		ID:        uuid.New(),
		SessionID: "session-123",
		Email:     "owner@example.com",
		Active:    true,
	}
}

func profileWithTenant(userID, tenantID uuid.UUID) *domain.UserProfile {
	return &domain.UserProfile{UserID: userID, AssignedTenantID: &tenantID}
}

func profileWithoutTenant(userID uuid.UUID) *domain.UserProfile {
	return &domain.UserProfile{UserID: userID}
}

func TestReconcilerUsecase_Reconcile_NoIdentity(t *testing.T) {
	uc, _ := newReconcilerForTest(t)

	resolution, err := uc.Reconcile(context.Background(), nil, true)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, resolution)
}

func TestReconcilerUsecase_Reconcile_RoleLookupFails(t *testing.T) {
	uc, mocks := newReconcilerForTest(t)
	identity := testIdentity()

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.Role(""), domain.NewStoreError("GetByUserID", assert.AnError))

	resolution, err := uc.Reconcile(context.Background(), identity, true)

	assert.Error(t, err)
	assert.True(t, domain.IsTransient(err))
	assert.Nil(t, resolution)
}

func TestReconcilerUsecase_Reconcile_NonAdminAtOwnerEntryPoint(t *testing.T) {
	uc, mocks := newReconcilerForTest(t)
	identity := testIdentity()

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleTechnician, nil)
	mocks.auth.EXPECT().SignOut(gomock.Any(), identity.SessionID).Return(nil)

	resolution, err := uc.Reconcile(context.Background(), identity, true)

	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	assert.Nil(t, resolution)
}

// The denial and sign-out fire even when the profile already carries an
// assignment; the access check comes before any profile read.
func TestReconcilerUsecase_Reconcile_NonAdminDeniedRegardlessOfAssignment(t *testing.T) {
	uc, mocks := newReconcilerForTest(t)
	identity := testIdentity()

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleFrontDesk, nil)
	mocks.auth.EXPECT().SignOut(gomock.Any(), identity.SessionID).Return(nil)
	// No profile expectations: the profile store must not be touched.

	resolution, err := uc.Reconcile(context.Background(), identity, true)

	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	assert.Nil(t, resolution)
}

// A failing sign-out must not mask the denial.
func TestReconcilerUsecase_Reconcile_SignOutFailureStillDenies(t *testing.T) {
	uc, mocks := newReconcilerForTest(t)
	identity := testIdentity()

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleTechnician, nil)
	mocks.auth.EXPECT().SignOut(gomock.Any(), identity.SessionID).Return(assert.AnError)

	_, err := uc.Reconcile(context.Background(), identity, true)

	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestReconcilerUsecase_Reconcile_AlreadyAssigned(t *testing.T) {
	uc, mocks := newReconcilerForTest(t)
	identity := testIdentity()
	tenantID := uuid.New()

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleAdministrator, nil)
	mocks.profiles.EXPECT().GetByUserID(gomock.Any(), identity.ID).
		Return(profileWithTenant(identity.ID, tenantID), nil)
	// No write expectations: an assigned profile is a pure no-op.

	resolution, err := uc.Reconcile(context.Background(), identity, true)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAlreadyAssigned, resolution.Outcome)
	assert.Equal(t, tenantID, *resolution.TenantID)
}

func TestReconcilerUsecase_Reconcile_AssignsFirstOwnedTenant(t *testing.T) {
	uc, mocks := newReconcilerForTest(t)
	identity := testIdentity()
	first := &domain.Tenant{ID: uuid.New(), Slug: "first-garage"}
	second := &domain.Tenant{ID: uuid.New(), Slug: "second-garage"}

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleAdministrator, nil)
	mocks.profiles.EXPECT().GetByUserID(gomock.Any(), identity.ID).
		Return(profileWithoutTenant(identity.ID), nil)
	mocks.tenants.EXPECT().ListByOwner(gomock.Any(), identity.ID).
		Return([]*domain.Tenant{first, second}, nil)
	mocks.profiles.EXPECT().AssignTenantIfUnset(gomock.Any(), identity.ID, first.ID).
		Return(true, nil)

	resolution, err := uc.Reconcile(context.Background(), identity, true)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAssignedOwned, resolution.Outcome)
	assert.Equal(t, first.ID, *resolution.TenantID)
}

func TestReconcilerUsecase_Reconcile_FallbackToOldestTenant(t *testing.T) {
	uc, mocks := newReconcilerForTest(t)
	identity := testIdentity()
	fallback := &domain.Tenant{ID: uuid.New(), Slug: "oldest-garage"}

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleAdministrator, nil)
	mocks.profiles.EXPECT().GetByUserID(gomock.Any(), identity.ID).
		Return(profileWithoutTenant(identity.ID), nil)
	mocks.tenants.EXPECT().ListByOwner(gomock.Any(), identity.ID).
		Return(nil, nil)
	mocks.tenants.EXPECT().First(gomock.Any()).
		Return(fallback, nil)
	mocks.profiles.EXPECT().AssignTenantIfUnset(gomock.Any(), identity.ID, fallback.ID).
		Return(true, nil)

	resolution, err := uc.Reconcile(context.Background(), identity, true)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAssignedFallback, resolution.Outcome)
	assert.Equal(t, fallback.ID, *resolution.TenantID)
}

// An empty store is a report, not an error.
func TestReconcilerUsecase_Reconcile_EmptyStore(t *testing.T) {
	uc, mocks := newReconcilerForTest(t)
	identity := testIdentity()

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleAdministrator, nil)
	mocks.profiles.EXPECT().GetByUserID(gomock.Any(), identity.ID).
		Return(profileWithoutTenant(identity.ID), nil)
	mocks.tenants.EXPECT().ListByOwner(gomock.Any(), identity.ID).
		Return(nil, nil)
	mocks.tenants.EXPECT().First(gomock.Any()).
		Return(nil, domain.ErrTenantNotFound)

	resolution, err := uc.Reconcile(context.Background(), identity, true)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNoTenantAvailable, resolution.Outcome)
	assert.Nil(t, resolution.TenantID)
}

func TestReconcilerUsecase_Reconcile_NonAdminOutsideOwnerFlow(t *testing.T) {
	uc, mocks := newReconcilerForTest(t)
	identity := testIdentity()

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleTechnician, nil)
	mocks.profiles.EXPECT().GetByUserID(gomock.Any(), identity.ID).
		Return(profileWithoutTenant(identity.ID), nil)
	// No tenant reads, no writes: non-administrators are never auto-assigned.

	resolution, err := uc.Reconcile(context.Background(), identity, false)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNoTenantAvailable, resolution.Outcome)
}

// Losing the conditional write means another run got there first; the
// winner's assignment is re-read and reported, not overwritten.
func TestReconcilerUsecase_Reconcile_LostRaceReturnsWinner(t *testing.T) {
	uc, mocks := newReconcilerForTest(t)
	identity := testIdentity()
	owned := &domain.Tenant{ID: uuid.New(), Slug: "my-garage"}
	winner := uuid.New()

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleAdministrator, nil)
	mocks.profiles.EXPECT().GetByUserID(gomock.Any(), identity.ID).
		Return(profileWithoutTenant(identity.ID), nil)
	mocks.tenants.EXPECT().ListByOwner(gomock.Any(), identity.ID).
		Return([]*domain.Tenant{owned}, nil)
	mocks.profiles.EXPECT().AssignTenantIfUnset(gomock.Any(), identity.ID, owned.ID).
		Return(false, nil)
	mocks.profiles.EXPECT().GetByUserID(gomock.Any(), identity.ID).
		Return(profileWithTenant(identity.ID, winner), nil)

	resolution, err := uc.Reconcile(context.Background(), identity, true)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAlreadyAssigned, resolution.Outcome)
	assert.Equal(t, winner, *resolution.TenantID)
}

func TestReconcilerUsecase_Reconcile_TransientProfileFailure(t *testing.T) {
	uc, mocks := newReconcilerForTest(t)
	identity := testIdentity()

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleAdministrator, nil)
	mocks.profiles.EXPECT().GetByUserID(gomock.Any(), identity.ID).
		Return(nil, domain.NewStoreError("GetByUserID", assert.AnError))

	resolution, err := uc.Reconcile(context.Background(), identity, true)

	assert.Error(t, err)
	assert.True(t, domain.IsTransient(err))
	assert.Nil(t, resolution)
}

// Two sequential runs against the same state produce the same answer and the
// second writes nothing.
func TestReconcilerUsecase_Reconcile_Idempotent(t *testing.T) {
	uc, mocks := newReconcilerForTest(t)
	identity := testIdentity()
	owned := &domain.Tenant{ID: uuid.New(), Slug: "my-garage"}

	// First run: assigns.
	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleAdministrator, nil)
	mocks.profiles.EXPECT().GetByUserID(gomock.Any(), identity.ID).
		Return(profileWithoutTenant(identity.ID), nil)
	mocks.tenants.EXPECT().ListByOwner(gomock.Any(), identity.ID).
		Return([]*domain.Tenant{owned}, nil)
	mocks.profiles.EXPECT().AssignTenantIfUnset(gomock.Any(), identity.ID, owned.ID).
		Return(true, nil)

	first, err := uc.Reconcile(context.Background(), identity, true)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAssignedOwned, first.Outcome)

	// Second run: sees the assignment, reads only.
	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleAdministrator, nil)
	mocks.profiles.EXPECT().GetByUserID(gomock.Any(), identity.ID).
		Return(profileWithTenant(identity.ID, owned.ID), nil)

	second, err := uc.Reconcile(context.Background(), identity, true)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAlreadyAssigned, second.Outcome)
	assert.Equal(t, *first.TenantID, *second.TenantID)
}
