// Package service defines interfaces for collaborators the use cases depend on but do not own:
// identity, storage, messaging and encoding backends.
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}

// PasswordGenerator produces temporary passwords for provisioned users.
type PasswordGenerator interface {
	// Generate returns a new random password.
	Generate() (string, error)
}
