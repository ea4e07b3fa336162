package server

import (
	"platefinder/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddFavorite handles POST /favorites
func (s *Server) AddFavorite(c *fiber.Ctx) error {
	var req struct {
		UserID     string                 `json:"user_id"`
		Restaurant map[string]interface{} `json:"restaurant"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.favoriteSvc().Add(c.Context(), req.UserID, req.Restaurant); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Favorite added successfully"})
}

// GetFavorites handles GET /favorites/:user_id
func (s *Server) GetFavorites(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	restaurants, err := s.favoriteSvc().List(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(restaurants)
}

// RemoveFavorite handles DELETE /favorites/:user_id/:place_id
func (s *Server) RemoveFavorite(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	placeID := c.Params("place_id")

	if err := s.favoriteSvc().Remove(c.Context(), userID, placeID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Favorite removed successfully"})
}
