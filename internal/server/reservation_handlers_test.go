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

func TestCreateAndListReservations(t *testing.T) {
	repo := testutil.NewReservationRepoStub()
	s := &Server{reservationRepo: repo}

	app := fiber.New()
	app.Post("/reservations", s.CreateReservation)
	app.Get("/reservations/:user_id", s.GetReservations)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/reservations", map[string]interface{}{
		"user_id":          "alice",
		"restaurant_id":    "place-1",
		"reservation_date": "2026-09-12",
		"reservation_time": "19:30",
		"number_of_people": 4,
		"course_type":      "dinner",
		"notes":            "window seat",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var saved map[string]string
	decodeJSON(t, resp, &saved)
	assert.Equal(t, "Reservation saved successfully", saved["message"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/reservations/alice", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reservations []struct {
		RestaurantID    string `json:"restaurant_id"`
		ReservationDate string `json:"reservation_date"`
		NumberOfPeople  int    `json:"number_of_people"`
	}
	decodeJSON(t, resp, &reservations)
	require.Len(t, reservations, 1)
	assert.Equal(t, "place-1", reservations[0].RestaurantID)
	assert.Equal(t, "2026-09-12", reservations[0].ReservationDate)
	assert.Equal(t, 4, reservations[0].NumberOfPeople)
}

func TestCreateReservationWithoutUserIDUsesAnonymous(t *testing.T) {
	repo := testutil.NewReservationRepoStub()
	s := &Server{reservationRepo: repo}

	app := fiber.New()
	app.Post("/reservations", s.CreateReservation)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/reservations", map[string]interface{}{
		"restaurant_id": "place-1",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, repo.Reservations, 1)
	assert.Equal(t, models.AnonymousUserID, repo.Reservations[0].UserID)
}

func TestListReservationsUnknownUserIsEmptyArray(t *testing.T) {
	s := &Server{reservationRepo: testutil.NewReservationRepoStub()}

	app := fiber.New()
	app.Get("/reservations/:user_id", s.GetReservations)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reservations/nobody", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reservations []interface{}
	decodeJSON(t, resp, &reservations)
	assert.Empty(t, reservations)
}
