// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher turns login passwords into the one-way digests the credential
// store keeps, and verifies them at login. The algorithm (bcrypt) stays behind
// this interface so nothing above the infra layer depends on it.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored digest.
	Check(password, hash string) bool
}
