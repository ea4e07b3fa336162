package server

import (
	"errors"
	"testing"

	"platefinder/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", models.NewValidationError("bad input"), fiber.StatusBadRequest},
		{"NotFound", models.NewNotFoundError("Profile", "nobody"), fiber.StatusNotFound},
		{"Internal", models.NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{"Upstream", models.NewUpstreamError("places API error: REQUEST_DENIED", nil), fiber.StatusInternalServerError},
		{"Decode", models.NewDecodeError("Invalid base64 image data", errors.New("illegal data")), fiber.StatusInternalServerError},
		{"PlainError", errors.New("not an app error"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapServiceError(tt.err))
		})
	}
}
