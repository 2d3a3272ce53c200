package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/taleom/taskboard/internal/domain/model"
)

type UserRepo interface {
	CreateUser(ctx context.Context, u model.User) (uuid.UUID, error)

	GetUserByEmail(ctx context.Context, email string) (model.User, error)

	GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error)

	// UpdateRefreshToken overwrites the single stored refresh token;
	// nil clears it.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token *string) error
}
