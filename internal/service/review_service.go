package service

import (
	"context"

	"platefinder/internal/models"
	"platefinder/internal/repository"
)

// reviewListLimit caps the public review listing to the 50 most recent rows.
const reviewListLimit = 50

// ReviewService handles review creation and the public listing.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
}

// CreateReviewInput is the payload for a new review. Rating and text are
// stored without range validation.
type CreateReviewInput struct {
	UserID       string
	RestaurantID string
	Rating       int
	ReviewText   string
}

func NewReviewService(reviewRepo repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

func (s *ReviewService) Create(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	userID := in.UserID
	if userID == "" {
		userID = models.AnonymousUserID
	}

	review := &models.Review{
		UserID:       userID,
		RestaurantID: in.RestaurantID,
		Rating:       in.Rating,
		ReviewText:   in.ReviewText,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListLatest returns the newest reviews with reviewer residences, newest first.
func (s *ReviewService) ListLatest(ctx context.Context) ([]models.ReviewWithLocation, error) {
	return s.reviewRepo.ListLatest(ctx, reviewListLimit)
}
