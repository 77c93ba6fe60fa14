package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/boutique/storefront/internal/domain/identity"
	"golang.org/x/crypto/bcrypt"
)

// PlainVerifier stores passwords as-is and compares them in constant time.
// It matches the original storefront's behavior and is rejected by config
// validation in production.
type PlainVerifier struct{}

// NewPlainVerifier creates a new PlainVerifier
func NewPlainVerifier() *PlainVerifier {
	return &PlainVerifier{}
}

// Hash returns the password unchanged
func (v *PlainVerifier) Hash(plain string) (string, error) {
	return plain, nil
}

// Verify compares the stored and supplied passwords
func (v *PlainVerifier) Verify(encoded, plain string) bool {
	return subtle.ConstantTimeCompare([]byte(encoded), []byte(plain)) == 1
}

// BcryptVerifier hashes passwords with bcrypt
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates a new BcryptVerifier with the default cost
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{cost: bcrypt.DefaultCost}
}

// Hash encodes the password with bcrypt
func (v *BcryptVerifier) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), v.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify checks the password against a bcrypt hash
func (v *BcryptVerifier) Verify(encoded, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plain)) == nil
}

// NewVerifier selects a verifier by config scheme name
func NewVerifier(scheme string) (identity.PasswordVerifier, error) {
	switch scheme {
	case "plain":
		return NewPlainVerifier(), nil
	case "bcrypt":
		return NewBcryptVerifier(), nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// Ensure both verifiers implement PasswordVerifier
var (
	_ identity.PasswordVerifier = (*PlainVerifier)(nil)
	_ identity.PasswordVerifier = (*BcryptVerifier)(nil)
)
