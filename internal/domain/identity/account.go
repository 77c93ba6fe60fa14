package identity

import (
	"github.com/boutique/storefront/internal/domain/shared"
)

// Account represents a customer account. Email is the unique login key and
// is matched case-sensitively.
type Account struct {
	shared.BaseEntity
	FirstName    string `gorm:"type:varchar(100);not null"`
	LastName     string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(200);not null"`
	Seq          int64  `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// NewAccount creates a customer account with an already-encoded password
func NewAccount(firstName, lastName, email, passwordHash string) (*Account, error) {
	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "First and last name are required")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}

	return &Account{
		BaseEntity:   shared.NewBaseEntity(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
	}, nil
}
