package catalog

import (
	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// Review is a customer review in the append-only ledger.
// Reviews are never edited or deleted, and they do not feed back into the
// product's display rating.
type Review struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Author    string    `gorm:"type:varchar(100);not null"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text;not null"`
	Seq       int64     `gorm:"not null;index"` // ledger position, assigned by the repository
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// NewReview creates a review after validating the form input
func NewReview(productID uuid.UUID, author string, rating int, comment string) (*Review, error) {
	if author == "" {
		return nil, shared.NewDomainError("INVALID_AUTHOR", "Author name cannot be empty")
	}
	if comment == "" {
		return nil, shared.NewDomainError("INVALID_COMMENT", "Comment cannot be empty")
	}
	if rating < 1 || rating > 5 {
		return nil, shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}

	return &Review{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Author:     author,
		Rating:     rating,
		Comment:    comment,
	}, nil
}
