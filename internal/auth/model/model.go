package model

import (
	"time"
)

type User struct {
	ID           int64  `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	CreatedAt    time.Time
}

// IssuedToken is what a successful login hands back to the client.
type IssuedToken struct {
	Token string
	Email string
}
