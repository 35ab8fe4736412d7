package service

import (
	"context"

	"github.com/rylmat/auth-service/internal/auth/dto"
	"github.com/rylmat/auth-service/internal/auth/hash"
	"github.com/rylmat/auth-service/internal/auth/jwt"
	"github.com/rylmat/auth-service/internal/auth/model"
	"github.com/rylmat/auth-service/internal/config"
	"github.com/rylmat/auth-service/internal/repo"
	validate "github.com/go-playground/validator/v10"
)

type AuthService interface {
	// Register creates an account and returns its id. No token is issued.
	Register(ctx context.Context, dto dto.RegisterDTO) (int64, error)
	// Login checks credentials and issues a bearer token.
	Login(ctx context.Context, dto dto.LoginDTO) (model.IssuedToken, error)
	// Verify validates a previously issued token and returns its claims.
	Verify(ctx context.Context, token string) (jwt.Claims, error)
}

func NewAuthService(userRepo repo.UserRepo, hasher hash.Hasher, tokenUtil jwt.TokenUtil, cfg *config.Config, v *validate.Validate) AuthService {
	return &authService{
		userRepo:  userRepo,
		hasher:    hasher,
		tokenUtil: tokenUtil,
		cfg:       cfg,
		v:         v,
	}
}
