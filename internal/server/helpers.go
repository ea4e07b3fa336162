package server

import (
	"errors"

	"platefinder/internal/models"
	"platefinder/internal/service"

	"github.com/gofiber/fiber/v2"
)

// mapServiceError maps an application error to its HTTP status code.
// Validation errors are the caller's fault, missing resources are 404 and
// everything else (storage, upstream, decode) is a server-side failure.
func mapServiceError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeValidation:
			return fiber.StatusBadRequest
		case models.CodeNotFound:
			return fiber.StatusNotFound
		}
	}
	return fiber.StatusInternalServerError
}

func (s *Server) profileSvc() *service.ProfileService {
	if s.profileService == nil {
		s.profileService = service.NewProfileService(s.profileRepo)
	}
	return s.profileService
}

func (s *Server) reviewSvc() *service.ReviewService {
	if s.reviewService == nil {
		s.reviewService = service.NewReviewService(s.reviewRepo)
	}
	return s.reviewService
}

func (s *Server) reservationSvc() *service.ReservationService {
	if s.reservationService == nil {
		s.reservationService = service.NewReservationService(s.reservationRepo)
	}
	return s.reservationService
}

func (s *Server) favoriteSvc() *service.FavoriteService {
	if s.favoriteService == nil {
		s.favoriteService = service.NewFavoriteService(s.favoriteRepo)
	}
	return s.favoriteService
}
