package identity

// PasswordVerifier encodes and checks passwords. The default implementation
// keeps the original plain-comparison semantics; a hashing scheme can be
// substituted without touching any caller.
type PasswordVerifier interface {
	// Hash encodes a plaintext password for storage
	Hash(plain string) (string, error)

	// Verify reports whether the plaintext matches the stored encoding
	Verify(encoded, plain string) bool
}
