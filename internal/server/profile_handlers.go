package server

import (
	"platefinder/internal/models"
	"platefinder/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SaveProfile handles POST /profile
func (s *Server) SaveProfile(c *fiber.Ctx) error {
	var req struct {
		UserID      string   `json:"user_id"`
		Residence   string   `json:"residence"`
		Age         int      `json:"age"`
		Gender      string   `json:"gender"`
		Preferences []string `json:"preferences"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	err := s.profileSvc().Save(c.Context(), service.SaveProfileInput{
		UserID:      req.UserID,
		Residence:   req.Residence,
		Age:         req.Age,
		Gender:      req.Gender,
		Preferences: req.Preferences,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Profile saved successfully"})
}

// GetProfile handles GET /profile/:user_id
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	profile, err := s.profileSvc().Get(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(profile)
}
