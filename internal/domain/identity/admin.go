package identity

import (
	"github.com/boutique/storefront/internal/domain/shared"
)

// AdminState represents the state of the back-office session
type AdminState string

const (
	AdminLoggedOut AdminState = "logged_out"
	AdminLoggedIn  AdminState = "logged_in"
)

// AdminSession is the process-wide back-office session: a two-state flag and
// the single shared admin password. It is not tied to any account record and
// is orthogonal to the customer session. The logged-in state is entered only
// via a successful Login and left only via an explicit Logout.
type AdminSession struct {
	state     AdminState
	password  string
	verifier  PasswordVerifier
	listeners []func(AdminState)
}

// NewAdminSession creates a logged-out session guarding the initial password
func NewAdminSession(initialPassword string, verifier PasswordVerifier) (*AdminSession, error) {
	if initialPassword == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Admin password cannot be empty")
	}
	encoded, err := verifier.Hash(initialPassword)
	if err != nil {
		return nil, err
	}
	return &AdminSession{
		state:    AdminLoggedOut,
		password: encoded,
		verifier: verifier,
	}, nil
}

// State returns the current session state
func (s *AdminSession) State() AdminState {
	return s.state
}

// LoggedIn returns true if the back office is unlocked
func (s *AdminSession) LoggedIn() bool {
	return s.state == AdminLoggedIn
}

// Login compares the supplied password against the shared admin password.
// On success the session flips to logged-in and observers are notified.
func (s *AdminSession) Login(password string) bool {
	if !s.verifier.Verify(s.password, password) {
		return false
	}
	s.transition(AdminLoggedIn)
	return true
}

// Logout returns the session to the logged-out state
func (s *AdminSession) Logout() {
	s.transition(AdminLoggedOut)
}

// ChangePassword replaces the shared admin password. The caller must supply
// the current password, a non-empty new password and a matching confirmation;
// there are no further strength checks.
func (s *AdminSession) ChangePassword(current, newPassword, confirm string) error {
	if !s.verifier.Verify(s.password, current) {
		return shared.ErrInvalidCredentials
	}
	if newPassword == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "New password cannot be empty")
	}
	if newPassword != confirm {
		return shared.NewDomainError("PASSWORD_MISMATCH", "New passwords do not match")
	}
	encoded, err := s.verifier.Hash(newPassword)
	if err != nil {
		return err
	}
	s.password = encoded
	return nil
}

// Subscribe registers an observer invoked on every state transition
func (s *AdminSession) Subscribe(fn func(AdminState)) {
	s.listeners = append(s.listeners, fn)
}

func (s *AdminSession) transition(next AdminState) {
	if s.state == next {
		return
	}
	s.state = next
	for _, fn := range s.listeners {
		fn(next)
	}
}
