package identity

import (
	"errors"
	"testing"

	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainVerifier is the test double for PasswordVerifier
type plainVerifier struct{}

func (plainVerifier) Hash(plain string) (string, error) { return plain, nil }
func (plainVerifier) Verify(encoded, plain string) bool { return encoded == plain }

func newTestSession(t *testing.T) *AdminSession {
	t.Helper()
	session, err := NewAdminSession("ca123", plainVerifier{})
	require.NoError(t, err)
	return session
}

func TestNewAdminSession(t *testing.T) {
	t.Run("starts logged out", func(t *testing.T) {
		session := newTestSession(t)
		assert.Equal(t, AdminLoggedOut, session.State())
		assert.False(t, session.LoggedIn())
	})

	t.Run("rejects empty initial password", func(t *testing.T) {
		_, err := NewAdminSession("", plainVerifier{})
		assert.Error(t, err)
	})
}

func TestAdminSession_Login(t *testing.T) {
	t.Run("correct password unlocks", func(t *testing.T) {
		session := newTestSession(t)
		assert.True(t, session.Login("ca123"))
		assert.True(t, session.LoggedIn())
	})

	t.Run("wrong password stays locked", func(t *testing.T) {
		session := newTestSession(t)
		assert.False(t, session.Login("nope"))
		assert.False(t, session.LoggedIn())
	})

	t.Run("logout returns to logged out", func(t *testing.T) {
		session := newTestSession(t)
		session.Login("ca123")
		session.Logout()
		assert.False(t, session.LoggedIn())
	})
}

func TestAdminSession_ChangePassword(t *testing.T) {
	t.Run("replaces the password", func(t *testing.T) {
		session := newTestSession(t)
		require.NoError(t, session.ChangePassword("ca123", "nouveau", "nouveau"))

		assert.False(t, session.Login("ca123"))
		assert.True(t, session.Login("nouveau"))
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		session := newTestSession(t)
		err := session.ChangePassword("wrong", "nouveau", "nouveau")
		assert.True(t, errors.Is(err, shared.ErrInvalidCredentials))
	})

	t.Run("rejects empty new password", func(t *testing.T) {
		session := newTestSession(t)
		assert.Error(t, session.ChangePassword("ca123", "", ""))
	})

	t.Run("rejects mismatched confirmation", func(t *testing.T) {
		session := newTestSession(t)
		err := session.ChangePassword("ca123", "nouveau", "autre")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "PASSWORD_MISMATCH", domainErr.Code)
	})
}

func TestAdminSession_Subscribe(t *testing.T) {
	t.Run("observers see transitions", func(t *testing.T) {
		session := newTestSession(t)
		var states []AdminState
		session.Subscribe(func(s AdminState) { states = append(states, s) })

		session.Login("ca123")
		session.Logout()

		assert.Equal(t, []AdminState{AdminLoggedIn, AdminLoggedOut}, states)
	})

	t.Run("no notification without a state change", func(t *testing.T) {
		session := newTestSession(t)
		var calls int
		session.Subscribe(func(AdminState) { calls++ })

		session.Logout()       // already logged out
		session.Login("wrong") // failed login
		session.Login("ca123") // transition
		session.Login("ca123") // already logged in, no transition

		assert.Equal(t, 1, calls)
	})
}
