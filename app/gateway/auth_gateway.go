package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"garage-hub/app/domain"
	"garage-hub/app/port"
)

// AuthGateway implements port.AuthGateway. It acts as an anti-corruption
// layer between the domain and the external authentication service.
type AuthGateway struct {
	kratosClient port.KratosClient
	logger       *slog.Logger
}

// NewAuthGateway creates a new AuthGateway instance
func NewAuthGateway(kratosClient port.KratosClient, logger *slog.Logger) *AuthGateway {
	return &AuthGateway{
		kratosClient: kratosClient,
		logger:       logger.With("component", "auth_gateway"),
	}
}

// CurrentIdentity resolves the session credential to the acting identity
func (g *AuthGateway) CurrentIdentity(ctx context.Context, credential string) (*domain.UserIdentity, error) {
	if credential == "" {
		return nil, domain.ErrUnauthorized
	}

	identity, err := g.kratosClient.WhoAmI(ctx, credential)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrUnauthorized
		}
		g.logger.Error("failed to resolve identity", "error", err)
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	if !identity.Active {
		return nil, domain.ErrUnauthorized
	}

	return identity, nil
}

// SignOut revokes the session. Used by the reconciler when a
// non-administrator reaches the owner entry point.
func (g *AuthGateway) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.ErrUnauthorized
	}

	if err := g.kratosClient.RevokeSession(ctx, sessionID); err != nil {
		g.logger.Error("failed to sign out session", "session_id", sessionID, "error", err)
		return fmt.Errorf("failed to sign out session: %w", err)
	}

	g.logger.Info("session signed out", "session_id", sessionID)
	return nil
}
