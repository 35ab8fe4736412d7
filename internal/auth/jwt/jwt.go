package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried inside a bearer token.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type TokenUtil interface {
	GenerateToken(userID int64, email string) (token string, err error)
	ValidateToken(token string) (claims Claims, err error)
}
