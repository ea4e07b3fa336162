package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"platefinder/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoriteApp(t *testing.T) (*fiber.App, *testutil.FavoriteRepoStub) {
	t.Helper()
	repo := testutil.NewFavoriteRepoStub()
	s := &Server{favoriteRepo: repo}

	app := fiber.New()
	app.Post("/favorites", s.AddFavorite)
	app.Get("/favorites/:user_id", s.GetFavorites)
	app.Delete("/favorites/:user_id/:place_id", s.RemoveFavorite)
	return app, repo
}

func TestFavoriteLifecycle(t *testing.T) {
	app, _ := newFavoriteApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/favorites", map[string]interface{}{
		"user_id": "alice",
		"restaurant": map[string]interface{}{
			"place_id": "place-1",
			"name":     "Trattoria Uno",
			"rating":   4.4,
		},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var added map[string]string
	decodeJSON(t, resp, &added)
	assert.Equal(t, "Favorite added successfully", added["message"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/favorites/alice", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var restaurants []map[string]interface{}
	decodeJSON(t, resp, &restaurants)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "Trattoria Uno", restaurants[0]["name"])

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/favorites/alice/place-1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var removed map[string]string
	decodeJSON(t, resp, &removed)
	assert.Equal(t, "Favorite removed successfully", removed["message"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/favorites/alice", nil))
	require.NoError(t, err)
	var after []map[string]interface{}
	decodeJSON(t, resp, &after)
	assert.Empty(t, after)
}

func TestAddFavoriteWithoutPlaceIDIs400(t *testing.T) {
	app, _ := newFavoriteApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/favorites", map[string]interface{}{
		"user_id":    "alice",
		"restaurant": map[string]interface{}{"name": "No Place"},
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRemoveMissingFavoriteSucceeds(t *testing.T) {
	app, _ := newFavoriteApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/favorites/alice/never-existed", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
