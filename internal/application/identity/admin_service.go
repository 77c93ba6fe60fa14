package identity

import (
	"github.com/boutique/storefront/internal/domain/identity"
	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// AdminService fronts the process-wide admin session
type AdminService struct {
	session  *identity.AdminSession
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(session *identity.AdminSession, logger *zap.Logger) *AdminService {
	return &AdminService{
		session:  session,
		validate: validator.New(),
		logger:   logger,
	}
}

// Login attempts to unlock the back office. A failed attempt leaves the
// session logged out.
func (s *AdminService) Login(password string) bool {
	ok := s.session.Login(password)
	if ok {
		s.logger.Info("admin logged in")
	} else {
		s.logger.Warn("admin login rejected")
	}
	return ok
}

// Logout locks the back office
func (s *AdminService) Logout() {
	s.session.Logout()
	s.logger.Info("admin logged out")
}

// LoggedIn reports whether the back office is unlocked
func (s *AdminService) LoggedIn() bool {
	return s.session.LoggedIn()
}

// ChangePassword replaces the shared admin password after checking the
// current password and the confirmation field
func (s *AdminService) ChangePassword(req ChangeAdminPasswordRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	if err := s.session.ChangePassword(req.Current, req.New, req.Confirm); err != nil {
		return err
	}
	s.logger.Info("admin password changed")
	return nil
}
