package service

import (
	"context"

	"platefinder/internal/models"
	"platefinder/internal/repository"
)

// ReservationService stores and lists reservation records. There is no
// overlap or capacity checking; reservations are pure record storage.
type ReservationService struct {
	reservationRepo repository.ReservationRepository
}

// CreateReservationInput is the payload for a new reservation. Date and time
// strings are stored as submitted.
type CreateReservationInput struct {
	UserID          string
	RestaurantID    string
	ReservationDate string
	ReservationTime string
	NumberOfPeople  int
	CourseType      string
	Notes           string
}

func NewReservationService(reservationRepo repository.ReservationRepository) *ReservationService {
	return &ReservationService{reservationRepo: reservationRepo}
}

func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (*models.Reservation, error) {
	userID := in.UserID
	if userID == "" {
		userID = models.AnonymousUserID
	}

	reservation := &models.Reservation{
		UserID:          userID,
		RestaurantID:    in.RestaurantID,
		ReservationDate: in.ReservationDate,
		ReservationTime: in.ReservationTime,
		NumberOfPeople:  in.NumberOfPeople,
		CourseType:      in.CourseType,
		Notes:           in.Notes,
	}
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// ListByUser returns a user's reservations ordered by date and time, newest first.
func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	return s.reservationRepo.ListByUser(ctx, userID)
}
