// Package service declares the ports the usecases need from infrastructure:
// hashing, token signing, the project cache and event publishing.
package service

// PasswordHasher turns plaintext passwords into stored hashes and back-checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
