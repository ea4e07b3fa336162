package server

import (
	"platefinder/internal/models"
	"platefinder/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateReservation handles POST /reservations
func (s *Server) CreateReservation(c *fiber.Ctx) error {
	var req struct {
		UserID          string `json:"user_id"`
		RestaurantID    string `json:"restaurant_id"`
		ReservationDate string `json:"reservation_date"`
		ReservationTime string `json:"reservation_time"`
		NumberOfPeople  int    `json:"number_of_people"`
		CourseType      string `json:"course_type"`
		Notes           string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	_, err := s.reservationSvc().Create(c.Context(), service.CreateReservationInput{
		UserID:          req.UserID,
		RestaurantID:    req.RestaurantID,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		NumberOfPeople:  req.NumberOfPeople,
		CourseType:      req.CourseType,
		Notes:           req.Notes,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Reservation saved successfully"})
}

// GetReservations handles GET /reservations/:user_id
func (s *Server) GetReservations(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	reservations, err := s.reservationSvc().ListByUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(reservations)
}
