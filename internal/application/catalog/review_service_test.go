package catalog

import (
	"context"
	"testing"

	"github.com/boutique/storefront/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Append(ctx context.Context, review *catalog.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.Review, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) FindAll(ctx context.Context) ([]catalog.Review, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Review), args.Error(1)
}

func TestReviewService_Add(t *testing.T) {
	t.Run("appends a valid review", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		svc := NewReviewService(reviews, zap.NewNop())

		reviews.On("Append", mock.Anything, mock.AnythingOfType("*catalog.Review")).Return(nil)

		review, err := svc.Add(context.Background(), AddReviewRequest{
			ProductID: uuid.New(),
			Author:    "Sophie L.",
			Rating:    5,
			Comment:   "Magnifique !",
		})

		require.NoError(t, err)
		assert.Equal(t, 5, review.Rating)
		reviews.AssertExpectations(t)
	})

	t.Run("rejects an invalid rating", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		svc := NewReviewService(reviews, zap.NewNop())

		_, err := svc.Add(context.Background(), AddReviewRequest{
			ProductID: uuid.New(),
			Author:    "Sophie L.",
			Rating:    6,
			Comment:   "Trop bien",
		})

		assert.Error(t, err)
		reviews.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("rejects an empty comment", func(t *testing.T) {
		reviews := new(MockReviewRepository)
		svc := NewReviewService(reviews, zap.NewNop())

		_, err := svc.Add(context.Background(), AddReviewRequest{
			ProductID: uuid.New(),
			Author:    "Sophie L.",
			Rating:    4,
		})

		assert.Error(t, err)
	})
}
