package repo

import (
	"context"

	"github.com/rylmat/auth-service/internal/auth/model"
)

type UserRepo interface {
	// CreateUser inserts a new account and returns its assigned id.
	// Returns ErrAlreadyExists when the email is already taken; the
	// uniqueness check happens inside the storage engine, not here.
	CreateUser(ctx context.Context, u model.User) (int64, error)

	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}
