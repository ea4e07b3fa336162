package repository

import (
	"context"

	"platefinder/internal/models"

	"gorm.io/gorm"
)

// ReservationRepository defines persistence operations for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository returns a new ReservationRepository implementation.
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	if err := r.db.WithContext(ctx).Create(reservation).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	// Non-nil so an empty listing renders as a JSON array, not null.
	reservations := make([]models.Reservation, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("reservation_date DESC, reservation_time DESC").
		Find(&reservations).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reservations, nil
}
