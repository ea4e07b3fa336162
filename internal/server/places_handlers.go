package server

import (
	"platefinder/internal/models"
	"platefinder/internal/places"

	"github.com/gofiber/fiber/v2"
)

// NearbyRestaurants handles POST /nearby_restaurants. The OPTIONS preflight
// for this route is answered by the CORS middleware.
func (s *Server) NearbyRestaurants(c *fiber.Ctx) error {
	var req struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Radius    int     `json:"radius"`
		Type      string  `json:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	restaurants, err := s.placesClient.NearbySearch(c.Context(), places.NearbySearchInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Radius:    req.Radius,
		PlaceType: req.Type,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(restaurants)
}

// GetPlacePhoto handles GET /place_photos?photo_references[]=...
func (s *Server) GetPlacePhoto(c *fiber.Ctx) error {
	photoReference := c.Query("photo_references[]")
	if photoReference == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Photo reference is required"))
	}

	photo, err := s.placesClient.FetchPhoto(c.Context(), photoReference)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	if photo.ContentType != "" {
		c.Set(fiber.HeaderContentType, photo.ContentType)
	}
	return c.Send(photo.Data)
}
