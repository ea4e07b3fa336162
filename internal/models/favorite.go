package models

import "time"

// Favorite stores a bookmarked restaurant. RestaurantData holds the full
// external-API record verbatim as a JSON blob; (user_id, place_id) is unique
// and saving the same pair again replaces the blob.
type Favorite struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	UserID         string    `gorm:"uniqueIndex:idx_favorites_user_place;size:64" json:"user_id"`
	PlaceID        string    `gorm:"uniqueIndex:idx_favorites_user_place;size:128" json:"place_id"`
	RestaurantData string    `gorm:"type:text" json:"restaurant_data"`
	CreatedAt      time.Time `json:"created_at"`
}
