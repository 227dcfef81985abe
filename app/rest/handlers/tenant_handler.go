package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"garage-hub/app/domain"
	"garage-hub/app/port"
	"garage-hub/app/usecase"
	"garage-hub/app/utils/validator"
)

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// TenantHandler handles tenant resolution HTTP requests
type TenantHandler struct {
	directory    port.TenantDirectory
	selector     port.Selector
	reconciler   port.Reconciler
	roles        port.RoleVerifier
	sessions     *usecase.SessionContextRegistry
	storeTimeout time.Duration
	validator    *validator.Validator
	logger       *slog.Logger
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(
	directory port.TenantDirectory,
	selector port.Selector,
	reconciler port.Reconciler,
	roles port.RoleVerifier,
	sessions *usecase.SessionContextRegistry,
	storeTimeout time.Duration,
	logger *slog.Logger,
) *TenantHandler {
	return &TenantHandler{
		directory:    directory,
		selector:     selector,
		reconciler:   reconciler,
		roles:        roles,
		sessions:     sessions,
		storeTimeout: storeTimeout,
		validator:    validator.New(),
		logger:       logger,
	}
}

// boundedContext derives the context handed to store-backed collaborators.
// Context refreshes are not bounded here; the session provider applies the
// timeout per call so a multi-step refresh is not clipped as a whole.
func (h *TenantHandler) boundedContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), h.storeTimeout)
}

// resolveResponse is the body of a successful slug resolution
type resolveResponse struct {
	Resolved bool                 `json:"resolved"`
	TenantID *uuid.UUID           `json:"tenant_id,omitempty"`
	Name     string               `json:"name,omitempty"`
	Slug     string               `json:"slug,omitempty"`
	Source   domain.ContextSource `json:"source"`
	Host     domain.HostInfo      `json:"host"`
}

// Resolve merges an explicit slug with the request hostname and looks the
// effective slug up in the tenant directory. Anonymous access is allowed;
// resolution does not mutate anything.
func (h *TenantHandler) Resolve(c echo.Context) error {
	ctx, cancel := h.boundedContext(c)
	defer cancel()

	hostname := c.QueryParam("host")
	if hostname == "" {
		hostname = c.Request().Host
	}
	explicit := c.QueryParam("slug")

	host := domain.ParseHostname(hostname)
	slug := domain.ResolveSlug(explicit, host)
	if slug == "" {
		return c.JSON(http.StatusOK, resolveResponse{
			Resolved: false,
			Source:   domain.SourceNone,
			Host:     host,
		})
	}

	tenant, err := h.directory.Lookup(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "no such garage",
				Code:  "TENANT_NOT_FOUND",
			})
		}
		h.logger.Error("tenant lookup failed", "slug", slug, "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "tenant directory unavailable",
			Code:  "STORE_UNAVAILABLE",
		})
	}

	source := domain.SourceSubdomain
	if strings.TrimSpace(explicit) != "" {
		source = domain.SourceExplicit
	}

	return c.JSON(http.StatusOK, resolveResponse{
		Resolved: true,
		TenantID: &tenant.ID,
		Name:     tenant.Name,
		Slug:     tenant.Slug,
		Source:   source,
		Host:     host,
	})
}

// contextResponse wraps the session tenant context with its latest error
type contextResponse struct {
	Context domain.TenantContext `json:"context"`
	Loading bool                 `json:"loading"`
	Error   string               `json:"error,omitempty"`
}

// Context returns the cached tenant context for the session
func (h *TenantHandler) Context(c echo.Context) error {
	identity, err := domain.IdentityFromContext(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	provider := h.sessions.ForSession(identity)
	current, lastErr := provider.Current()

	resp := contextResponse{Context: current, Loading: provider.Loading()}
	if lastErr != nil {
		resp.Error = lastErr.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

// refreshRequest is the body of a context refresh
type refreshRequest struct {
	Slug      string `json:"slug" validate:"omitempty,slug"`
	AdminFlow bool   `json:"admin_flow"`
}

// RefreshContext re-runs the resolution chain and swaps the session context
func (h *TenantHandler) RefreshContext(c echo.Context) error {
	ctx := c.Request().Context()

	identity, err := domain.IdentityFromContext(ctx)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	provider := h.sessions.ForSession(identity)
	next, refreshErr := provider.Refresh(ctx, usecase.RefreshRequest{
		ExplicitSlug: req.Slug,
		Hostname:     c.Request().Host,
		AdminFlow:    req.AdminFlow,
	})

	if refreshErr != nil && !domain.IsDisplayState(refreshErr) {
		if errors.Is(refreshErr, domain.ErrAccessDenied) {
			h.sessions.Teardown(identity.SessionID)
			return c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "access denied",
				Code:  "ACCESS_DENIED",
			})
		}
		h.logger.Error("context refresh failed", "user_id", identity.ID, "error", refreshErr)
		return c.JSON(http.StatusServiceUnavailable, contextResponse{
			Context: next,
			Error:   refreshErr.Error(),
		})
	}

	resp := contextResponse{Context: next}
	if refreshErr != nil {
		resp.Error = refreshErr.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

// selectRequest is the body of an explicit tenant selection
type selectRequest struct {
	TenantID string `json:"tenant_id" validate:"required,uuid4"`
}

// Select binds the chosen tenant to the acting profile
func (h *TenantHandler) Select(c echo.Context) error {
	ctx, cancel := h.boundedContext(c)
	defer cancel()

	identity, err := domain.IdentityFromContext(ctx)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	var req selectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tenant id"})
	}

	if err := h.selector.Select(ctx, identity, tenantID); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		case errors.Is(err, domain.ErrInvalidReference):
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error: "tenant does not exist",
				Code:  "INVALID_REFERENCE",
			})
		case errors.Is(err, domain.ErrProfileNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
		default:
			h.logger.Error("tenant selection failed", "user_id", identity.ID, "error", err)
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error: "selection could not be persisted",
				Code:  "STORE_UNAVAILABLE",
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"selected":  true,
		"tenant_id": tenantID,
	})
}

// Reconcile runs the assignment reconciler through the owner entry point
func (h *TenantHandler) Reconcile(c echo.Context) error {
	ctx, cancel := h.boundedContext(c)
	defer cancel()

	identity, err := domain.IdentityFromContext(ctx)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	resolution, err := h.reconciler.Reconcile(ctx, identity, true)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccessDenied):
			// The session has already been revoked by the reconciler.
			h.sessions.Teardown(identity.SessionID)
			return c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "access denied",
				Code:  "ACCESS_DENIED",
			})
		case errors.Is(err, domain.ErrUnauthorized):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		case errors.Is(err, domain.ErrProfileNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
		default:
			h.logger.Error("reconciliation failed", "user_id", identity.ID, "error", err)
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error: "reconciliation failed",
				Code:  "STORE_UNAVAILABLE",
			})
		}
	}

	return c.JSON(http.StatusOK, resolution)
}

// TeardownSession discards the session's cached tenant context at logout
func (h *TenantHandler) TeardownSession(c echo.Context) error {
	identity, err := domain.IdentityFromContext(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	h.sessions.Teardown(identity.SessionID)
	return c.JSON(http.StatusOK, map[string]interface{}{"teardown": true})
}

// GetSettings returns the settings of a garage; administrators only, the
// custom settings map may hold operational details not meant for staff.
func (h *TenantHandler) GetSettings(c echo.Context) error {
	ctx, cancel := h.boundedContext(c)
	defer cancel()
	slug := c.Param("slug")

	identity, err := domain.IdentityFromContext(ctx)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	role, err := h.roles.Verify(ctx, identity.ID)
	if err != nil {
		h.logger.Error("role verification failed", "user_id", identity.ID, "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "role lookup failed"})
	}
	if !role.IsAdministrator() {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "administrator role required"})
	}

	settings, err := h.directory.GetSettings(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "no such garage"})
		}
		h.logger.Error("settings lookup failed", "slug", slug, "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "tenant directory unavailable"})
	}

	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings replaces the settings of a garage; administrators only
func (h *TenantHandler) UpdateSettings(c echo.Context) error {
	ctx, cancel := h.boundedContext(c)
	defer cancel()
	slug := c.Param("slug")

	identity, err := domain.IdentityFromContext(ctx)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	role, err := h.roles.Verify(ctx, identity.ID)
	if err != nil {
		h.logger.Error("role verification failed", "user_id", identity.ID, "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "role lookup failed"})
	}
	if !role.IsAdministrator() {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "administrator role required"})
	}

	var req domain.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	settings := domain.TenantSettings{
		Currency: req.Currency,
		Timezone: req.Timezone,
		Language: req.Language,
		Custom:   req.Custom,
	}

	if err := h.directory.UpdateSettings(ctx, slug, settings); err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "no such garage"})
		}
		h.logger.Error("settings update failed", "slug", slug, "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "settings could not be persisted"})
	}

	return c.JSON(http.StatusOK, settings)
}
