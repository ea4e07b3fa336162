package server

import (
	"platefinder/internal/models"

	"github.com/gofiber/fiber/v2"
)

// profileImageCacheControl keeps served thumbnails cacheable for a year;
// overwritten profiles always get a new filename.
const profileImageCacheControl = "public, max-age=31536000"

// UploadProfileImage handles POST /upload_profile_image
func (s *Server) UploadProfileImage(c *fiber.Ctx) error {
	var req struct {
		UserID    string `json:"user_id"`
		ImageData string `json:"image_data"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	imageURL, err := s.imageService.Store(c.Context(), req.UserID, req.ImageData)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"message":   "Profile image uploaded successfully",
		"image_url": imageURL,
	})
}

// GetProfileImage handles GET /profile_image/:filename
func (s *Server) GetProfileImage(c *fiber.Ctx) error {
	filename := c.Params("filename")

	path, err := s.imageService.Resolve(filename)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	c.Set(fiber.HeaderCacheControl, profileImageCacheControl)
	return c.SendFile(path)
}
