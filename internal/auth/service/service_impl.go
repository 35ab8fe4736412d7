package service

import (
	"context"
	"errors"

	"github.com/rylmat/auth-service/internal/auth/dto"
	customErrors "github.com/rylmat/auth-service/internal/auth/errors"
	"github.com/rylmat/auth-service/internal/auth/hash"
	"github.com/rylmat/auth-service/internal/auth/jwt"
	"github.com/rylmat/auth-service/internal/auth/model"
	"github.com/rylmat/auth-service/internal/config"
	"github.com/rylmat/auth-service/internal/repo"
	validator "github.com/go-playground/validator/v10"
)

type authService struct {
	userRepo  repo.UserRepo
	hasher    hash.Hasher
	tokenUtil jwt.TokenUtil
	cfg       *config.Config
	v         *validator.Validate
}

func (a *authService) Register(ctx context.Context, dto dto.RegisterDTO) (int64, error) {
	if err := a.v.Struct(dto); err != nil {
		return 0, classifyValidation(err)
	}

	passwordHash, err := a.hasher.Hash(dto.Password + a.cfg.PasswordPepper)
	if err != nil {
		return 0, customErrors.WrapInternal(err, "Register")
	}

	user := model.User{
		Email:        dto.Email,
		PasswordHash: passwordHash,
	}
	id, err := a.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return 0, customErrors.ErrAlreadyExists
		}
		return 0, customErrors.WrapInternal(err, "Register")
	}

	return id, nil
}

func (a *authService) Login(ctx context.Context, dto dto.LoginDTO) (model.IssuedToken, error) {
	if err := a.v.Struct(dto); err != nil {
		return model.IssuedToken{}, customErrors.ErrMissingField
	}

	user, err := a.userRepo.GetUserByEmail(ctx, dto.Email)
	if errors.Is(err, customErrors.ErrNotFound) {
		// same error as a wrong password, so lookups cannot probe
		// which emails are registered
		return model.IssuedToken{}, customErrors.ErrInvalidCredentials
	}
	if err != nil {
		return model.IssuedToken{}, customErrors.WrapInternal(err, "Login")
	}

	ok, err := a.hasher.Verify(dto.Password+a.cfg.PasswordPepper, user.PasswordHash)
	if err != nil {
		return model.IssuedToken{}, customErrors.WrapInternal(err, "Login")
	}
	if !ok {
		return model.IssuedToken{}, customErrors.ErrInvalidCredentials
	}

	token, err := a.tokenUtil.GenerateToken(user.ID, user.Email)
	if err != nil {
		return model.IssuedToken{}, customErrors.WrapInternal(err, "Login")
	}

	return model.IssuedToken{
		Token: token,
		Email: user.Email,
	}, nil
}

func (a *authService) Verify(ctx context.Context, token string) (jwt.Claims, error) {
	if token == "" {
		return jwt.Claims{}, customErrors.ErrMissingToken
	}

	claims, err := a.tokenUtil.ValidateToken(token)
	if err != nil {
		return jwt.Claims{}, customErrors.ErrInvalidToken
	}

	return claims, nil
}

// classifyValidation maps validator failures onto the register error
// taxonomy: an absent field wins over a short password.
func classifyValidation(err error) error {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return customErrors.WrapInternal(err, "validate")
	}
	for _, fe := range verr {
		if fe.Tag() == "required" {
			return customErrors.ErrMissingField
		}
	}
	for _, fe := range verr {
		if fe.Tag() == "min" {
			return customErrors.ErrWeakPassword
		}
	}
	return customErrors.ErrMissingField
}
