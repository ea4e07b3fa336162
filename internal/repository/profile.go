// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"platefinder/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository defines persistence operations for user profiles and
// their preference sets.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *models.UserProfile, preferences []string) error
	GetWithPreferences(ctx context.Context, userID string) (*models.UserProfile, []string, error)
	UpdateImageURL(ctx context.Context, userID, imageURL string) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert inserts or updates the profile row and replaces the full preference
// set in the same transaction. Replacement is delete-then-insert: concurrent
// saves for one user serialize at the database and the last committed
// transaction wins wholesale, never a merge of the two sets.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.UserProfile, preferences []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"residence", "age", "gender", "updated_at",
			}),
		}).Create(profile).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", profile.UserID).
			Delete(&models.UserPreference{}).Error; err != nil {
			return err
		}

		if len(preferences) == 0 {
			return nil
		}

		rows := make([]models.UserPreference, 0, len(preferences))
		for _, p := range preferences {
			rows = append(rows, models.UserPreference{
				UserID:     profile.UserID,
				Preference: p,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) GetWithPreferences(ctx context.Context, userID string) (*models.UserProfile, []string, error) {
	var profile models.UserProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, models.NewNotFoundError("Profile", userID)
		}
		return nil, nil, models.NewInternalError(err)
	}

	var preferences []string
	if err := r.db.WithContext(ctx).
		Model(&models.UserPreference{}).
		Where("user_id = ?", userID).
		Pluck("preference", &preferences).Error; err != nil {
		return nil, nil, models.NewInternalError(err)
	}

	return &profile, preferences, nil
}

// UpdateImageURL writes the profile image URL. Matching zero rows is not an
// error: uploads for users without a profile row succeed and only the file
// is kept.
func (r *profileRepository) UpdateImageURL(ctx context.Context, userID, imageURL string) error {
	if err := r.db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Update("profile_image_url", imageURL).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
