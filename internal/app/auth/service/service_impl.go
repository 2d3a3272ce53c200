package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/taleom/taskboard/internal/app/auth/jwt"
	customErrors "github.com/taleom/taskboard/internal/domain/errors"
	"github.com/taleom/taskboard/internal/domain/model"
	"github.com/taleom/taskboard/internal/domain/repo"
	"github.com/taleom/taskboard/internal/infra/config"
	"github.com/taleom/taskboard/internal/transport/rest/dto"
)

var argonParams = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  2,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

type authService struct {
	userRepo  repo.UserRepo
	tokenUtil jwt.TokenUtil
	cfg       *config.Config
	v         *validator.Validate
}

func New(
	ur repo.UserRepo,
	tu jwt.TokenUtil,
	cfg *config.Config,
	v *validator.Validate,
) Service {
	return &authService{userRepo: ur, tokenUtil: tu, cfg: cfg, v: v}
}

func (a *authService) Register(ctx context.Context, in dto.RegisterDTO) error {
	if err := a.v.Struct(in); err != nil {
		return customErrors.NewInvalidArgument(dto.FirstValidationMessage(err))
	}

	_, err := a.userRepo.GetUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return customErrors.ErrAlreadyExists
	case !errors.Is(err, customErrors.ErrNotFound):
		return customErrors.WrapInternal(err, "Register")
	}

	passwordHash, err := argon2id.CreateHash(in.Password+a.cfg.PasswordPepper, argonParams)
	if err != nil {
		return customErrors.WrapInternal(err, "Register")
	}

	user := model.User{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: passwordHash,
	}
	if _, err = a.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return customErrors.ErrAlreadyExists
		}
		return customErrors.WrapInternal(err, "Register")
	}

	return nil
}

func (a *authService) Login(ctx context.Context, in dto.LoginDTO) (model.TokenPair, error) {
	if err := a.v.Struct(in); err != nil {
		return model.TokenPair{}, customErrors.NewInvalidArgument(dto.FirstValidationMessage(err))
	}

	user, err := a.userRepo.GetUserByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		// absent email signals the client toward registration
		return model.TokenPair{}, customErrors.ErrUserNotFound
	case err != nil:
		return model.TokenPair{}, customErrors.WrapInternal(err, "Login")
	}

	ok, err := argon2id.ComparePasswordAndHash(in.Password+a.cfg.PasswordPepper, user.PasswordHash)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "Login")
	}
	if !ok {
		return model.TokenPair{}, customErrors.ErrInvalidCredentials
	}

	at, atExp, err := a.tokenUtil.GenerateAccessToken(user.ID)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "GenerateAccessToken")
	}
	rt, rtExp, err := a.tokenUtil.GenerateRefreshToken(user.ID)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "GenerateRefreshToken")
	}

	// single slot: a new login supersedes any earlier refresh token
	if err = a.userRepo.UpdateRefreshToken(ctx, user.ID, &rt); err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "StoreRefresh")
	}

	now := time.Now()

	return model.TokenPair{
		AccessToken:  at,
		RefreshToken: rt,
		AccessTTL:    atExp.Sub(now),
		RefreshTTL:   rtExp.Sub(now),
		UserID:       user.ID,
	}, nil
}

func (a *authService) Refresh(ctx context.Context, in dto.RefreshDTO) (string, error) {
	if err := a.v.Struct(in); err != nil {
		return "", customErrors.NewInvalidArgument(dto.FirstValidationMessage(err))
	}

	userID, err := a.tokenUtil.ValidateRefreshToken(in.RefreshToken)
	if err != nil {
		return "", customErrors.ErrInvalidToken
	}

	user, err := a.userRepo.GetUserByID(ctx, userID)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return "", customErrors.ErrInvalidToken
	case err != nil:
		return "", customErrors.WrapInternal(err, "Refresh")
	}

	// a superseded or cleared token fails even with a valid signature
	if user.RefreshToken == nil || *user.RefreshToken != in.RefreshToken {
		return "", customErrors.ErrInvalidToken
	}

	access, _, err := a.tokenUtil.GenerateAccessToken(user.ID)
	if err != nil {
		return "", customErrors.WrapInternal(err, "GenerateAccessToken")
	}

	return access, nil
}

func (a *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return customErrors.ErrUnauthorized
	}

	if err := a.userRepo.UpdateRefreshToken(ctx, userID, nil); err != nil {
		return customErrors.WrapInternal(err, "Logout")
	}
	return nil
}
