package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	customErrors "github.com/taleom/taskboard/internal/domain/errors"
	"github.com/taleom/taskboard/internal/infra/config"
)

type TokenUtilImpl struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
}

func NewTokenUtil(cfg *config.Config) (*TokenUtilImpl, error) {
	if cfg.JWTSecret == "" || cfg.JWTRefreshSecret == "" {
		return nil, customErrors.WrapInternal(
			errors.New("signing secrets not configured"), "NewTokenUtil")
	}

	return &TokenUtilImpl{
		accessSecret:  []byte(cfg.JWTSecret),
		refreshSecret: []byte(cfg.JWTRefreshSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
		issuer:        cfg.JWTIssuer,
	}, nil
}

func (t *TokenUtilImpl) GenerateAccessToken(userID uuid.UUID) (string, time.Time, error) {
	return t.generate(userID, t.accessTTL, t.accessSecret)
}

func (t *TokenUtilImpl) GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error) {
	return t.generate(userID, t.refreshTTL, t.refreshSecret)
}

func (t *TokenUtilImpl) generate(userID uuid.UUID, ttl time.Duration, secret []byte) (string, time.Time, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    t.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, customErrors.WrapInternal(err, "sign token")
	}

	return signed, claims.ExpiresAt.Time, nil
}

func (t *TokenUtilImpl) ValidateAccessToken(raw string) (uuid.UUID, error) {
	return t.validate(raw, t.accessSecret)
}

func (t *TokenUtilImpl) ValidateRefreshToken(raw string) (uuid.UUID, error) {
	return t.validate(raw, t.refreshSecret)
}

func (t *TokenUtilImpl) validate(raw string, secret []byte) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, customErrors.ErrInvalidToken
		}
		return secret, nil
	}, jwt.WithIssuedAt(), jwt.WithLeeway(30*time.Second))

	if err != nil || !token.Valid {
		return uuid.Nil, customErrors.ErrInvalidToken
	}

	if t.issuer != "" && claims.Issuer != t.issuer {
		return uuid.Nil, customErrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, customErrors.ErrInvalidToken
	}

	return userID, nil
}
