package jwt

import (
	"time"

	"github.com/google/uuid"
)

// TokenUtil issues and verifies the two token kinds. Access tokens are
// validated statelessly; refresh tokens are additionally checked against
// the stored slot by the auth service.
type TokenUtil interface {
	GenerateAccessToken(userID uuid.UUID) (token string, exp time.Time, err error)

	GenerateRefreshToken(userID uuid.UUID) (token string, exp time.Time, err error)

	ValidateAccessToken(raw string) (uuid.UUID, error)

	ValidateRefreshToken(raw string) (uuid.UUID, error)
}
