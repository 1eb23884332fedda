package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/enrollment/internal/errors"
)

// passwordService implements PasswordService using Argon2id.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// Hash hashes plain using Argon2id.
func (p *passwordService) Hash(plain string) (string, error) {
	hash, err := p.hasher.Hash([]byte(plain))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hash, nil
}

// Verify performs a constant-time comparison between plain and hash.
func (p *passwordService) Verify(plain, hash string) bool {
	if hash == "" {
		return false
	}
	ok, err := p.hasher.Verify([]byte(plain), hash)
	if err != nil {
		return false
	}
	return ok
}

// NewPasswordService creates a PasswordService using the Moderate Argon2id policy.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// unreachable with a built-in policy
		panic(err)
	}

	return &passwordService{hasher: hasher}
}
