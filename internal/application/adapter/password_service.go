// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing.
//
// The login flow never verifies credentials (it is decorative by design),
// so only hashing at registration time is required.
type PasswordService interface {
	// HashPassword hashes a plain text password for storage.
	HashPassword(password string) (string, error)
}
