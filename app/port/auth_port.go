package port

import (
	"context"

	"garage-hub/app/domain"
)

// AuthGateway is the boundary to the authentication collaborator. It supplies
// the current identity and the forced sign-out used by the reconciler's
// access-denied path.
type AuthGateway interface {
	CurrentIdentity(ctx context.Context, credential string) (*domain.UserIdentity, error)
	SignOut(ctx context.Context, sessionID string) error
}

// KratosClient defines the operations the gateway needs from Ory Kratos
type KratosClient interface {
	WhoAmI(ctx context.Context, credential string) (*domain.UserIdentity, error)
	RevokeSession(ctx context.Context, sessionID string) error
	Health(ctx context.Context) error
}
