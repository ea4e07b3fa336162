package repository

import (
	"context"

	"platefinder/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository defines persistence operations for favorites.
type FavoriteRepository interface {
	Upsert(ctx context.Context, favorite *models.Favorite) error
	ListByUser(ctx context.Context, userID string) ([]models.Favorite, error)
	Delete(ctx context.Context, userID, placeID string) error
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository returns a new FavoriteRepository implementation.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Upsert saves a favorite; saving an existing (user_id, place_id) pair
// replaces the stored restaurant blob with the latest value.
func (r *favoriteRepository) Upsert(ctx context.Context, favorite *models.Favorite) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "place_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"restaurant_data"}),
	}).Create(favorite).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&favorites).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return favorites, nil
}

// Delete removes one favorite. Deleting a pair that does not exist is a
// successful no-op.
func (r *favoriteRepository) Delete(ctx context.Context, userID, placeID string) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Delete(&models.Favorite{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
