package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContextSource identifies how the session's tenant was chosen
type ContextSource string

const (
	SourceExplicit  ContextSource = "explicit"
	SourceSubdomain ContextSource = "subdomain"
	SourceProfile   ContextSource = "profile"
	SourceNone      ContextSource = "none"
)

// TenantContext is the derived, in-memory result of tenant resolution.
// It lives for the session and is recomputed on refresh, never persisted.
type TenantContext struct {
	TenantID   *uuid.UUID    `json:"tenant_id,omitempty"`
	TenantName string        `json:"tenant_name,omitempty"`
	Source     ContextSource `json:"source"`
	ResolvedAt time.Time     `json:"resolved_at"`
}

// HasTenant reports whether the context resolved to a tenant
func (c TenantContext) HasTenant() bool {
	return c.TenantID != nil
}

// EmptyTenantContext returns the unresolved context
func EmptyTenantContext() TenantContext {
	return TenantContext{Source: SourceNone, ResolvedAt: time.Now()}
}

// ResolutionOutcome describes what the assignment reconciler did
type ResolutionOutcome string

const (
	OutcomeAlreadyAssigned   ResolutionOutcome = "already_assigned"
	OutcomeAssignedOwned     ResolutionOutcome = "assigned_owned"
	OutcomeAssignedFallback  ResolutionOutcome = "assigned_fallback"
	OutcomeNoTenantAvailable ResolutionOutcome = "no_tenant_available"
)

// Resolution is the reconciler's terminal report. TenantID is nil only for
// OutcomeNoTenantAvailable.
type Resolution struct {
	TenantID *uuid.UUID        `json:"tenant_id,omitempty"`
	Outcome  ResolutionOutcome `json:"outcome"`
}
