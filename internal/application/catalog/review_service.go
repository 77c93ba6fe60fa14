package catalog

import (
	"context"

	"github.com/boutique/storefront/internal/domain/catalog"
	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService handles the append-only review ledger. It never updates the
// product's display rating; that field stays under editorial control.
type ReviewService struct {
	reviews  catalog.ReviewRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviews catalog.ReviewRepository, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		validate: validator.New(),
		logger:   logger,
	}
}

// Add validates the review form and appends a new review. A rejected form is
// a local concern: the caller re-prompts, nothing is stored.
func (s *ReviewService) Add(ctx context.Context, req AddReviewRequest) (*catalog.Review, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	review, err := catalog.NewReview(req.ProductID, req.Author, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}

	if err := s.reviews.Append(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("review added",
		zap.String("product_id", req.ProductID.String()),
		zap.Int("rating", req.Rating),
	)
	return review, nil
}

// ByProduct returns the reviews for a product, newest first
func (s *ReviewService) ByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.Review, error) {
	return s.reviews.FindByProduct(ctx, productID)
}

// All returns every review, newest first
func (s *ReviewService) All(ctx context.Context) ([]catalog.Review, error) {
	return s.reviews.FindAll(ctx)
}
