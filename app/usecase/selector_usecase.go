package usecase

import (
	"context"
	"log/slog"

	"garage-hub/app/domain"
	"garage-hub/app/port"

	"github.com/google/uuid"
)

// SelectorUsecase binds a user-chosen tenant to the acting profile. Unlike
// the reconciler this is user-initiated and always overwrites: explicit
// intent wins over any automatic assignment.
type SelectorUsecase struct {
	profileRepo port.ProfileRepositoryPort
	logger      *slog.Logger
}

// NewSelectorUsecase creates a new SelectorUsecase instance
func NewSelectorUsecase(profileRepo port.ProfileRepositoryPort, logger *slog.Logger) *SelectorUsecase {
	return &SelectorUsecase{
		profileRepo: profileRepo,
		logger:      logger.With("component", "selector_usecase"),
	}
}

// Select persists the chosen tenant on the acting profile. The tenant id is
// not validated here; a dangling reference is rejected by the store and
// surfaced verbatim as domain.ErrInvalidReference. All-or-nothing: a failed
// write leaves the profile untouched.
func (u *SelectorUsecase) Select(ctx context.Context, identity *domain.UserIdentity, tenantID uuid.UUID) error {
	if identity == nil {
		return domain.ErrUnauthorized
	}

	if tenantID == uuid.Nil {
		return domain.ErrInvalidInput
	}

	if err := u.profileRepo.SetAssignedTenant(ctx, identity.ID, tenantID); err != nil {
		return err
	}

	u.logger.Info("tenant selected",
		"user_id", identity.ID, "tenant_id", tenantID)
	return nil
}
