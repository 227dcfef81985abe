package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"garage-hub/app/domain"
	mock_port "garage-hub/app/mocks"
	"garage-hub/app/usecase"
	"garage-hub/app/utils/logger"
)

type handlerMocks struct {
	directory  *mock_port.MockTenantDirectory
	selector   *mock_port.MockSelector
	reconciler *mock_port.MockReconciler
	roles      *mock_port.MockRoleVerifier
}

func newTenantHandlerForTest(t *testing.T) (*TenantHandler, handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := handlerMocks{
		directory:  mock_port.NewMockTenantDirectory(ctrl),
		selector:   mock_port.NewMockSelector(ctrl),
		reconciler: mock_port.NewMockReconciler(ctrl),
		roles:      mock_port.NewMockRoleVerifier(ctrl),
	}

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	sessions := usecase.NewSessionContextRegistry(mocks.directory, mocks.reconciler, time.Second, testLogger)
	handler := NewTenantHandler(mocks.directory, mocks.selector, mocks.reconciler, mocks.roles, sessions, time.Second, testLogger)
	return handler, mocks
}

func newEchoContext(t *testing.T, method, target, body string, identity *domain.UserIdentity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if identity != nil {
		req = req.WithContext(domain.WithIdentity(req.Context(), identity))
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func handlerTestIdentity() *domain.UserIdentity {
	return &domain.UserIdentity{
		ID:        uuid.New(),
		SessionID: "session-123",
		Email:     "user@example.com",
		Active:    true,
	}
}

func TestTenantHandler_Resolve(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)
	tenant := &domain.Tenant{ID: uuid.New(), Slug: "shop1", Name: "Shop One"}

	mocks.directory.EXPECT().Lookup(gomock.Any(), "shop1").Return(tenant, nil)

	c, rec := newEchoContext(t, http.MethodGet, "/v1/tenants/resolve", "", nil)
	c.Request().Host = "shop1.example.com"

	require.NoError(t, handler.Resolve(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp resolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Resolved)
	assert.Equal(t, tenant.ID, *resp.TenantID)
	assert.Equal(t, domain.SourceSubdomain, resp.Source)
}

func TestTenantHandler_Resolve_ExplicitBeatsSubdomain(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)
	tenant := &domain.Tenant{ID: uuid.New(), Slug: "chosen", Name: "Chosen Garage"}

	mocks.directory.EXPECT().Lookup(gomock.Any(), "chosen").Return(tenant, nil)

	c, rec := newEchoContext(t, http.MethodGet, "/v1/tenants/resolve?slug=chosen", "", nil)
	c.Request().Host = "shop1.example.com"

	require.NoError(t, handler.Resolve(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp resolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "chosen", resp.Slug)
	assert.Equal(t, domain.SourceExplicit, resp.Source)
}

func TestTenantHandler_Resolve_NoSlugAnywhere(t *testing.T) {
	handler, _ := newTenantHandlerForTest(t)

	c, rec := newEchoContext(t, http.MethodGet, "/v1/tenants/resolve", "", nil)
	c.Request().Host = "example.com"

	require.NoError(t, handler.Resolve(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp resolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Resolved)
	assert.Equal(t, domain.SourceNone, resp.Source)
}

func TestTenantHandler_Resolve_UnknownSlug(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)

	mocks.directory.EXPECT().Lookup(gomock.Any(), "ghost").
		Return(nil, domain.ErrTenantNotFound)

	c, rec := newEchoContext(t, http.MethodGet, "/v1/tenants/resolve?slug=ghost", "", nil)
	c.Request().Host = "example.com"

	require.NoError(t, handler.Resolve(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTenantHandler_Resolve_StoreFailure(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)

	mocks.directory.EXPECT().Lookup(gomock.Any(), "shop1").
		Return(nil, domain.NewStoreError("GetBySlug", assert.AnError))

	c, rec := newEchoContext(t, http.MethodGet, "/v1/tenants/resolve", "", nil)
	c.Request().Host = "shop1.example.com"

	require.NoError(t, handler.Resolve(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTenantHandler_Context_RequiresAuth(t *testing.T) {
	handler, _ := newTenantHandlerForTest(t)

	c, rec := newEchoContext(t, http.MethodGet, "/v1/session/context", "", nil)

	require.NoError(t, handler.Context(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTenantHandler_RefreshContext(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)
	identity := handlerTestIdentity()
	tenant := &domain.Tenant{ID: uuid.New(), Slug: "my-garage", Name: "My Garage"}

	mocks.directory.EXPECT().Lookup(gomock.Any(), "my-garage").Return(tenant, nil)

	c, rec := newEchoContext(t, http.MethodPost, "/v1/session/context/refresh",
		`{"slug": "my-garage"}`, identity)

	require.NoError(t, handler.RefreshContext(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp contextResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, tenant.ID, *resp.Context.TenantID)
	assert.Empty(t, resp.Error)
}

// The not-found display state answers 200 with an empty context and the
// state alongside, not an error status.
func TestTenantHandler_RefreshContext_UnknownSlugIsDisplayState(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)
	identity := handlerTestIdentity()

	mocks.directory.EXPECT().Lookup(gomock.Any(), "ghost").
		Return(nil, domain.ErrTenantNotFound)

	c, rec := newEchoContext(t, http.MethodPost, "/v1/session/context/refresh",
		`{"slug": "ghost"}`, identity)

	require.NoError(t, handler.RefreshContext(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp contextResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Context.TenantID)
	assert.NotEmpty(t, resp.Error)
}

func TestTenantHandler_Select(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)
	identity := handlerTestIdentity()
	tenantID := uuid.New()

	mocks.selector.EXPECT().Select(gomock.Any(), identity, tenantID).Return(nil)

	c, rec := newEchoContext(t, http.MethodPost, "/v1/session/select",
		`{"tenant_id": "`+tenantID.String()+`"}`, identity)

	require.NoError(t, handler.Select(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTenantHandler_Select_DanglingReference(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)
	identity := handlerTestIdentity()
	tenantID := uuid.New()

	mocks.selector.EXPECT().Select(gomock.Any(), identity, tenantID).
		Return(domain.ErrInvalidReference)

	c, rec := newEchoContext(t, http.MethodPost, "/v1/session/select",
		`{"tenant_id": "`+tenantID.String()+`"}`, identity)

	require.NoError(t, handler.Select(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestTenantHandler_Select_InvalidBody(t *testing.T) {
	handler, _ := newTenantHandlerForTest(t)
	identity := handlerTestIdentity()

	c, rec := newEchoContext(t, http.MethodPost, "/v1/session/select",
		`{"tenant_id": "not-a-uuid"}`, identity)

	require.NoError(t, handler.Select(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTenantHandler_Reconcile(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)
	identity := handlerTestIdentity()
	tenantID := uuid.New()

	mocks.reconciler.EXPECT().Reconcile(gomock.Any(), identity, true).
		Return(&domain.Resolution{TenantID: &tenantID, Outcome: domain.OutcomeAssignedOwned}, nil)

	c, rec := newEchoContext(t, http.MethodPost, "/v1/session/reconcile", "", identity)

	require.NoError(t, handler.Reconcile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resolution domain.Resolution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolution))
	assert.Equal(t, domain.OutcomeAssignedOwned, resolution.Outcome)
}

func TestTenantHandler_Reconcile_AccessDenied(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)
	identity := handlerTestIdentity()

	mocks.reconciler.EXPECT().Reconcile(gomock.Any(), identity, true).
		Return(nil, domain.ErrAccessDenied)

	c, rec := newEchoContext(t, http.MethodPost, "/v1/session/reconcile", "", identity)

	require.NoError(t, handler.Reconcile(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTenantHandler_GetSettings(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)
	identity := handlerTestIdentity()

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleAdministrator, nil)
	mocks.directory.EXPECT().GetSettings(gomock.Any(), "my-garage").
		Return(&domain.TenantSettings{Currency: "EUR"}, nil)

	c, rec := newEchoContext(t, http.MethodGet, "/v1/tenants/my-garage/settings", "", identity)
	c.SetParamNames("slug")
	c.SetParamValues("my-garage")

	require.NoError(t, handler.GetSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var settings domain.TenantSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, "EUR", settings.Currency)
}

// The settings body can hold operational details, so reading it carries the
// same administrator gate as writing it.
func TestTenantHandler_GetSettings_RequiresAuth(t *testing.T) {
	handler, _ := newTenantHandlerForTest(t)

	c, rec := newEchoContext(t, http.MethodGet, "/v1/tenants/my-garage/settings", "", nil)
	c.SetParamNames("slug")
	c.SetParamValues("my-garage")

	require.NoError(t, handler.GetSettings(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTenantHandler_GetSettings_AdminOnly(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)
	identity := handlerTestIdentity()

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleFrontDesk, nil)

	c, rec := newEchoContext(t, http.MethodGet, "/v1/tenants/my-garage/settings", "", identity)
	c.SetParamNames("slug")
	c.SetParamValues("my-garage")

	require.NoError(t, handler.GetSettings(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// Direct endpoints bound their store calls; a hung store answers with a
// deadline error instead of stalling the request forever.
func TestTenantHandler_Reconcile_BoundsStoreCalls(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)
	identity := handlerTestIdentity()
	tenantID := uuid.New()

	mocks.reconciler.EXPECT().Reconcile(gomock.Any(), identity, true).
		DoAndReturn(func(ctx context.Context, _ *domain.UserIdentity, _ bool) (*domain.Resolution, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return &domain.Resolution{TenantID: &tenantID, Outcome: domain.OutcomeAlreadyAssigned}, nil
		})

	c, rec := newEchoContext(t, http.MethodPost, "/v1/session/reconcile", "", identity)

	require.NoError(t, handler.Reconcile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTenantHandler_Resolve_BoundsStoreCalls(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)
	tenant := &domain.Tenant{ID: uuid.New(), Slug: "shop1", Name: "Shop One"}

	mocks.directory.EXPECT().Lookup(gomock.Any(), "shop1").
		DoAndReturn(func(ctx context.Context, _ string) (*domain.Tenant, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return tenant, nil
		})

	c, rec := newEchoContext(t, http.MethodGet, "/v1/tenants/resolve", "", nil)
	c.Request().Host = "shop1.example.com"

	require.NoError(t, handler.Resolve(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTenantHandler_UpdateSettings_AdminOnly(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)
	identity := handlerTestIdentity()

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleTechnician, nil)

	c, rec := newEchoContext(t, http.MethodPut, "/v1/tenants/my-garage/settings",
		`{"currency": "EUR", "timezone": "Europe/Berlin", "language": "de"}`, identity)
	c.SetParamNames("slug")
	c.SetParamValues("my-garage")

	require.NoError(t, handler.UpdateSettings(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTenantHandler_UpdateSettings(t *testing.T) {
	handler, mocks := newTenantHandlerForTest(t)
	identity := handlerTestIdentity()

	mocks.roles.EXPECT().Verify(gomock.Any(), identity.ID).
		Return(domain.RoleAdministrator, nil)
	mocks.directory.EXPECT().UpdateSettings(gomock.Any(), "my-garage", domain.TenantSettings{
		Currency: "EUR",
		Timezone: "Europe/Berlin",
		Language: "de",
	}).Return(nil)

	c, rec := newEchoContext(t, http.MethodPut, "/v1/tenants/my-garage/settings",
		`{"currency": "EUR", "timezone": "Europe/Berlin", "language": "de"}`, identity)
	c.SetParamNames("slug")
	c.SetParamValues("my-garage")

	require.NoError(t, handler.UpdateSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTenantHandler_TeardownSession(t *testing.T) {
	handler, _ := newTenantHandlerForTest(t)
	identity := handlerTestIdentity()

	c, rec := newEchoContext(t, http.MethodPost, "/v1/session/teardown", "", identity)

	require.NoError(t, handler.TeardownSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
