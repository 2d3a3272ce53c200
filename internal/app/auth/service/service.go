package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/taleom/taskboard/internal/domain/model"
	"github.com/taleom/taskboard/internal/transport/rest/dto"
)

// Service drives a user's session through its three states: anonymous
// (no stored refresh token), active (token stored by Login), and back to
// anonymous after Logout.
type Service interface {
	// Register creates the account only; the caller logs in separately.
	Register(ctx context.Context, in dto.RegisterDTO) error

	// Login verifies credentials and replaces any previously stored
	// refresh token, so at most one session per user stays live.
	Login(ctx context.Context, in dto.LoginDTO) (model.TokenPair, error)

	// Refresh mints a new access token. The presented refresh token must
	// match the stored slot exactly and is not rotated.
	Refresh(ctx context.Context, in dto.RefreshDTO) (string, error)

	// Logout clears the stored refresh token. Idempotent.
	Logout(ctx context.Context, userID uuid.UUID) error
}
