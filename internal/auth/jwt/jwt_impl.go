package jwt

import (
	"time"

	customErrors "github.com/rylmat/auth-service/internal/auth/errors"
	"github.com/rylmat/auth-service/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type tokenUtilImpl struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenUtil builds the issuer/verifier from config. The signing secret is
// process-wide state established once at startup.
func NewTokenUtil(cfg *config.Config) *tokenUtilImpl {
	return &tokenUtilImpl{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

func (t *tokenUtilImpl) GenerateToken(userID int64, email string) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", customErrors.WrapInternal(err, "sign token")
	}

	return signed, nil
}

func (t *tokenUtilImpl) ValidateToken(raw string) (Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(tk *jwt.Token) (interface{}, error) {
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, customErrors.ErrInvalidToken
		}
		return t.secret, nil
	})

	if err != nil {
		return Claims{}, customErrors.ErrInvalidToken
	}

	if !token.Valid {
		return Claims{}, customErrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return Claims{}, customErrors.ErrInvalidToken
	}

	return *claims, nil
}
