package identity

import (
	"context"
	"errors"

	"github.com/boutique/storefront/internal/domain/identity"
	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// AuthService handles customer accounts and the current session identity.
// The customer session is orthogonal to the admin session: neither grants
// the other.
type AuthService struct {
	accounts identity.AccountRepository
	verifier identity.PasswordVerifier
	current  *identity.Account
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService with no signed-in customer
func NewAuthService(accounts identity.AccountRepository, verifier identity.PasswordVerifier, logger *zap.Logger) *AuthService {
	return &AuthService{
		accounts: accounts,
		verifier: verifier,
		validate: validator.New(),
		logger:   logger,
	}
}

// Signup creates a customer account and signs it in. An exact,
// case-sensitive email match against an existing account rejects the signup
// and nothing is stored.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*identity.Account, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	exists, err := s.accounts.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrAlreadyExists
	}

	encoded, err := s.verifier.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	account, err := identity.NewAccount(req.FirstName, req.LastName, req.Email, encoded)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, err
	}

	s.current = account
	s.logger.Info("customer signed up", zap.String("id", account.ID.String()))
	return account, nil
}

// Login signs a customer in on an exact email and password match
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*identity.Account, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	account, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.verifier.Verify(account.PasswordHash, req.Password) {
		return nil, shared.ErrInvalidCredentials
	}

	s.current = account
	s.logger.Info("customer logged in", zap.String("id", account.ID.String()))
	return account, nil
}

// Logout clears the current session identity
func (s *AuthService) Logout() {
	s.current = nil
}

// Current returns the signed-in customer, or nil when anonymous
func (s *AuthService) Current() *identity.Account {
	return s.current
}

// Accounts lists all customer accounts in signup order (the admin clients page)
func (s *AuthService) Accounts(ctx context.Context) ([]identity.Account, error) {
	return s.accounts.FindAll(ctx)
}

// Count counts all customer accounts
func (s *AuthService) Count(ctx context.Context) (int64, error) {
	return s.accounts.Count(ctx)
}
