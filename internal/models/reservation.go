package models

import "time"

// Reservation is a pure booking record. Date and time are kept as submitted
// strings; there is no overlap or capacity checking.
type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"index;size:64" json:"user_id"`
	RestaurantID    string    `gorm:"size:128" json:"restaurant_id"`
	ReservationDate string    `gorm:"size:32" json:"reservation_date"`
	ReservationTime string    `gorm:"size:32" json:"reservation_time"`
	NumberOfPeople  int       `json:"number_of_people"`
	CourseType      string    `gorm:"size:64" json:"course_type"`
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}
