package domain

import (
	"context"

	"github.com/google/uuid"
)

// UserIdentity is the authenticated principal supplied by the auth
// collaborator. The service consumes it but never creates one.
type UserIdentity struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"session_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
}

type identityContextKey struct{}

// WithIdentity stores the identity in the context
func WithIdentity(ctx context.Context, identity *UserIdentity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identity)
}

// IdentityFromContext extracts the identity from the context.
// Returns ErrUnauthorized when no authenticated identity is present.
func IdentityFromContext(ctx context.Context) (*UserIdentity, error) {
	identity, ok := ctx.Value(identityContextKey{}).(*UserIdentity)
	if !ok || identity == nil {
		return nil, ErrUnauthorized
	}
	return identity, nil
}
