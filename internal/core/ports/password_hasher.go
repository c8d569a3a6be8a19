package ports

// PasswordHasher hashes credentials at registration and verifies them at
// login. The stored credential is always a hash; plain-equality comparison
// of stored passwords is deliberately impossible through this port.
type PasswordHasher interface {
	// Hash derives a storable hash from a plain-text password.
	Hash(plain string) (string, error)

	// Compare verifies a plain-text password against a stored hash,
	// returning an AuthenticationError on mismatch.
	Compare(hashed, plain string) error
}
