package hash

import (
	"github.com/alexedwards/argon2id"
)

// Hasher produces and checks salted one-way password digests.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) (bool, error)
}

type argon2Hasher struct {
	params *argon2id.Params
}

func NewArgon2Hasher() Hasher {
	return &argon2Hasher{params: argon2id.DefaultParams}
}

func (h *argon2Hasher) Hash(password string) (string, error) {
	return argon2id.CreateHash(password, h.params)
}

// Verify reports whether password matches digest. A malformed digest is an
// error; a plain mismatch is (false, nil).
func (h *argon2Hasher) Verify(password, digest string) (bool, error) {
	return argon2id.ComparePasswordAndHash(password, digest)
}
