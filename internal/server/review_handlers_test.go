package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"platefinder/internal/models"
	"platefinder/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListReviews(t *testing.T) {
	repo := testutil.NewReviewRepoStub()
	repo.Residence["alice"] = "Lisbon"
	s := &Server{reviewRepo: repo}

	app := fiber.New()
	app.Get("/reviews", s.GetReviews)
	app.Post("/reviews", s.CreateReview)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/reviews", map[string]interface{}{
		"user_id":       "alice",
		"restaurant_id": "place-1",
		"rating":        5,
		"review_text":   "superb",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var saved map[string]string
	decodeJSON(t, resp, &saved)
	assert.Equal(t, "Review saved successfully", saved["message"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/reviews", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reviews []struct {
		UserID       string `json:"user_id"`
		RestaurantID string `json:"restaurant_id"`
		UserLocation string `json:"user_location"`
	}
	decodeJSON(t, resp, &reviews)
	require.Len(t, reviews, 1)
	assert.Equal(t, "alice", reviews[0].UserID)
	assert.Equal(t, "place-1", reviews[0].RestaurantID)
	assert.Equal(t, "Lisbon", reviews[0].UserLocation)
}

func TestCreateReviewWithoutUserIDUsesAnonymous(t *testing.T) {
	repo := testutil.NewReviewRepoStub()
	s := &Server{reviewRepo: repo}

	app := fiber.New()
	app.Post("/reviews", s.CreateReview)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/reviews", map[string]interface{}{
		"restaurant_id": "place-1",
		"rating":        3,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, repo.Reviews, 1)
	assert.Equal(t, models.AnonymousUserID, repo.Reviews[0].UserID)
}

func TestListReviewsFailureIs500(t *testing.T) {
	repo := testutil.NewReviewRepoStub()
	repo.FailWith = models.NewInternalError(assert.AnError)
	s := &Server{reviewRepo: repo}

	app := fiber.New()
	app.Get("/reviews", s.GetReviews)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reviews", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
