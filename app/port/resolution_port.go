package port

import (
	"context"

	"garage-hub/app/domain"

	"github.com/google/uuid"
)

// Reconciler drives the tenant-assignment state machine for a user
type Reconciler interface {
	// Reconcile resolves the user's tenant assignment. ownerEntryPoint marks
	// that the user arrived through the entry point reserved for garage
	// owners; non-administrators reaching it are signed out and denied.
	Reconcile(ctx context.Context, identity *domain.UserIdentity, ownerEntryPoint bool) (*domain.Resolution, error)
}

// Selector binds a user-chosen tenant to the acting profile
type Selector interface {
	// Select unconditionally overwrites the profile assignment; user intent
	// always wins over any automatic assignment.
	Select(ctx context.Context, identity *domain.UserIdentity, tenantID uuid.UUID) error
}
