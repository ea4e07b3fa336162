package server

import (
	"context"
	"time"

	"platefinder/internal/models"
	"platefinder/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetReviews handles GET /reviews
func (s *Server) GetReviews(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	reviews, err := s.reviewSvc().ListLatest(ctx)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(reviews)
}

// CreateReview handles POST /reviews
func (s *Server) CreateReview(c *fiber.Ctx) error {
	var req struct {
		UserID       string `json:"user_id"`
		RestaurantID string `json:"restaurant_id"`
		Rating       int    `json:"rating"`
		ReviewText   string `json:"review_text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	_, err := s.reviewSvc().Create(c.Context(), service.CreateReviewInput{
		UserID:       req.UserID,
		RestaurantID: req.RestaurantID,
		Rating:       req.Rating,
		ReviewText:   req.ReviewText,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Review saved successfully"})
}
