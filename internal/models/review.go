package models

import "time"

// Review is a user-submitted restaurant review. Rating and text are stored
// as submitted; no range validation is applied.
type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"index;size:64" json:"user_id"`
	RestaurantID string    `gorm:"size:128" json:"restaurant_id"`
	Rating       int       `json:"rating"`
	ReviewText   string    `gorm:"type:text" json:"review_text"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReviewWithLocation is a review row joined with the reviewer's residence
// for the public listing.
type ReviewWithLocation struct {
	ID           uint      `json:"id"`
	UserID       string    `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	Rating       int       `json:"rating"`
	ReviewText   string    `json:"review_text"`
	CreatedAt    time.Time `json:"created_at"`
	UserLocation string    `json:"user_location"`
}
