// Package service provides the password and token primitives behind admin access.
package service

// PasswordService hashes and verifies the admin password.
type PasswordService interface {
	// Hash produces an Argon2id PHC string for plain.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches hash. Malformed hashes never match.
	Verify(plain, hash string) bool
}

// TokenService generates session tokens and hashes them for storage.
type TokenService interface {
	// GenerateToken returns a random plain token and its SHA-256 hex hash.
	GenerateToken() (plainToken string, tokenHash string, err error)

	// HashToken hashes a plain token using SHA-256.
	HashToken(plainToken string) string
}
