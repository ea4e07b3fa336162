// Package models contains data structures for the application's domain models.
package models

import "time"

// AnonymousUserID is substituted whenever a request omits the user identifier.
// Requests are never rejected for a missing user_id.
const AnonymousUserID = "anonymous_user"

// UserProfile represents a user's profile in the PlateFinder application.
// The followers/following counts and image URL columns are additive and
// guaranteed by the schema bootstrap at startup.
type UserProfile struct {
	UserID          string    `gorm:"primaryKey;size:64" json:"user_id"`
	Residence       string    `json:"residence"`
	Age             int       `json:"age"`
	Gender          string    `json:"gender"`
	ProfileImageURL string    `gorm:"size:255" json:"profile_image_url"`
	FollowersCount  int       `gorm:"default:0" json:"followers_count"`
	FollowingCount  int       `gorm:"default:0" json:"following_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName overrides the table name used by GORM.
func (UserProfile) TableName() string {
	return "user_profiles"
}

// UserPreference is a single cuisine/taste preference attached to a profile.
// The full set is replaced wholesale on every profile save.
type UserPreference struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	UserID     string `gorm:"index;size:64" json:"user_id"`
	Preference string `json:"preference"`
}

// TableName overrides the table name used by GORM.
func (UserPreference) TableName() string {
	return "user_preferences"
}
