package repository

import (
	"context"

	"platefinder/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListLatest(ctx context.Context, limit int) ([]models.ReviewWithLocation, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository returns a new ReviewRepository implementation.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListLatest returns the newest reviews joined with the reviewer's residence.
// Reviews from users without a profile row still appear (LEFT JOIN).
func (r *reviewRepository) ListLatest(ctx context.Context, limit int) ([]models.ReviewWithLocation, error) {
	// Non-nil so an empty listing renders as a JSON array, not null.
	reviews := make([]models.ReviewWithLocation, 0)
	if err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.*, user_profiles.residence AS user_location").
		Joins("LEFT JOIN user_profiles ON reviews.user_id = user_profiles.user_id").
		Order("reviews.created_at DESC").
		Limit(limit).
		Scan(&reviews).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}
