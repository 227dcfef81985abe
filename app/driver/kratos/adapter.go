package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"garage-hub/app/domain"
	"garage-hub/app/port"
)

// sessionCookieName marks a browser credential; anything else is treated as
// an API session token.
const sessionCookieName = "ory_kratos_session"

// ClientAdapter adapts the Kratos client to port.KratosClient
type ClientAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewClientAdapter creates a new adapter
func NewClientAdapter(client *Client, logger *slog.Logger) port.KratosClient {
	return &ClientAdapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// WhoAmI resolves a session credential to the authenticated identity.
// A browser Cookie header and a raw session token are both accepted.
func (a *ClientAdapter) WhoAmI(ctx context.Context, credential string) (*domain.UserIdentity, error) {
	req := a.client.PublicAPI().FrontendAPI.ToSession(ctx)
	if strings.Contains(credential, sessionCookieName) {
		req = req.Cookie(credential)
	} else {
		req = req.XSessionToken(credential)
	}

	resp, httpResp, err := req.Execute()
	if err != nil {
		a.logger.Debug("kratos whoami failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		if httpResp != nil && httpResp.StatusCode == http.StatusUnauthorized {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("kratos whoami: %w", err)
	}

	return transformSession(resp)
}

// RevokeSession disables a session via the Kratos admin API
func (a *ClientAdapter) RevokeSession(ctx context.Context, sessionID string) error {
	a.logger.Info("revoking session in Kratos", "session_id", sessionID)

	httpResp, err := a.client.AdminAPI().IdentityAPI.
		DisableSession(ctx, sessionID).
		Execute()

	if err != nil {
		a.logger.Error("kratos session revocation failed",
			"session_id", sessionID,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return fmt.Errorf("kratos revoke session: %w", err)
	}

	a.logger.Info("session revoked", "session_id", sessionID)
	return nil
}

// Health checks Kratos connectivity
func (a *ClientAdapter) Health(ctx context.Context) error {
	return a.client.HealthCheck(ctx)
}

// transformSession maps a Kratos session to the domain identity
func transformSession(session *kratosclient.Session) (*domain.UserIdentity, error) {
	if session.Identity == nil {
		return nil, fmt.Errorf("kratos session has no identity")
	}

	identityID, err := uuid.Parse(session.Identity.Id)
	if err != nil {
		return nil, fmt.Errorf("invalid kratos identity id %q: %w", session.Identity.Id, err)
	}

	identity := &domain.UserIdentity{
		ID:        identityID,
		SessionID: session.Id,
		Active:    session.Active != nil && *session.Active,
	}

	if traits, ok := session.Identity.Traits.(map[string]interface{}); ok {
		if email, ok := traits["email"].(string); ok {
			identity.Email = email
		}
		if name, ok := traits["name"].(string); ok {
			identity.Name = name
		}
	}

	return identity, nil
}

func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
