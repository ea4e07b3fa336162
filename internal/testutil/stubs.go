// Package testutil provides shared test doubles and fixtures for backend tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"sort"
	"testing"
	"time"

	"platefinder/internal/models"
)

// ProfileRepoStub is an in-memory profile repository implementation for tests.
type ProfileRepoStub struct {
	Profiles    map[string]*models.UserProfile
	Preferences map[string][]string
	ImageURLs   map[string]string
	FailWith    error
}

// NewProfileRepoStub creates an in-memory profile repository stub.
func NewProfileRepoStub() *ProfileRepoStub {
	return &ProfileRepoStub{
		Profiles:    make(map[string]*models.UserProfile),
		Preferences: make(map[string][]string),
		ImageURLs:   make(map[string]string),
	}
}

// Upsert stores the profile and replaces its preference set.
func (s *ProfileRepoStub) Upsert(_ context.Context, profile *models.UserProfile, preferences []string) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	copied := *profile
	copied.UpdatedAt = time.Now().UTC()
	s.Profiles[profile.UserID] = &copied
	s.Preferences[profile.UserID] = append([]string(nil), preferences...)
	return nil
}

// GetWithPreferences fetches a profile and its preferences.
func (s *ProfileRepoStub) GetWithPreferences(_ context.Context, userID string) (*models.UserProfile, []string, error) {
	if s.FailWith != nil {
		return nil, nil, s.FailWith
	}
	profile, ok := s.Profiles[userID]
	if !ok {
		return nil, nil, models.NewNotFoundError("Profile", userID)
	}
	copied := *profile
	if url, ok := s.ImageURLs[userID]; ok {
		copied.ProfileImageURL = url
	}
	return &copied, append([]string(nil), s.Preferences[userID]...), nil
}

// UpdateImageURL records the image URL; unknown users still succeed.
func (s *ProfileRepoStub) UpdateImageURL(_ context.Context, userID, imageURL string) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.ImageURLs[userID] = imageURL
	return nil
}

// ReviewRepoStub is an in-memory review repository implementation for tests.
type ReviewRepoStub struct {
	Reviews   []models.Review
	Residence map[string]string
	FailWith  error
	nextID    uint
}

// NewReviewRepoStub creates an in-memory review repository stub.
func NewReviewRepoStub() *ReviewRepoStub {
	return &ReviewRepoStub{Residence: make(map[string]string), nextID: 1}
}

// Create appends a review.
func (s *ReviewRepoStub) Create(_ context.Context, review *models.Review) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	review.ID = s.nextID
	s.nextID++
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}
	s.Reviews = append(s.Reviews, *review)
	return nil
}

// ListLatest returns the newest reviews joined with the reviewer's residence.
func (s *ReviewRepoStub) ListLatest(_ context.Context, limit int) ([]models.ReviewWithLocation, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	sorted := append([]models.Review(nil), s.Reviews...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]models.ReviewWithLocation, 0, len(sorted))
	for _, r := range sorted {
		out = append(out, models.ReviewWithLocation{
			ID:           r.ID,
			UserID:       r.UserID,
			RestaurantID: r.RestaurantID,
			Rating:       r.Rating,
			ReviewText:   r.ReviewText,
			CreatedAt:    r.CreatedAt,
			UserLocation: s.Residence[r.UserID],
		})
	}
	return out, nil
}

// ReservationRepoStub is an in-memory reservation repository implementation
// for tests.
type ReservationRepoStub struct {
	Reservations []models.Reservation
	FailWith     error
	nextID       uint
}

// NewReservationRepoStub creates an in-memory reservation repository stub.
func NewReservationRepoStub() *ReservationRepoStub {
	return &ReservationRepoStub{nextID: 1}
}

// Create appends a reservation.
func (s *ReservationRepoStub) Create(_ context.Context, reservation *models.Reservation) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	reservation.ID = s.nextID
	s.nextID++
	s.Reservations = append(s.Reservations, *reservation)
	return nil
}

// ListByUser returns a user's reservations, date then time descending.
func (s *ReservationRepoStub) ListByUser(_ context.Context, userID string) ([]models.Reservation, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	out := make([]models.Reservation, 0)
	for _, r := range s.Reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ReservationDate != out[j].ReservationDate {
			return out[i].ReservationDate > out[j].ReservationDate
		}
		return out[i].ReservationTime > out[j].ReservationTime
	})
	return out, nil
}

// FavoriteRepoStub is an in-memory favorite repository implementation for
// tests, keyed on (user, place).
type FavoriteRepoStub struct {
	Items    map[string]map[string]models.Favorite
	FailWith error
}

// NewFavoriteRepoStub creates an in-memory favorite repository stub.
func NewFavoriteRepoStub() *FavoriteRepoStub {
	return &FavoriteRepoStub{Items: make(map[string]map[string]models.Favorite)}
}

// Upsert stores the favorite, replacing any blob for the same pair.
func (s *FavoriteRepoStub) Upsert(_ context.Context, favorite *models.Favorite) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	if s.Items[favorite.UserID] == nil {
		s.Items[favorite.UserID] = make(map[string]models.Favorite)
	}
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = time.Now().UTC()
	}
	s.Items[favorite.UserID][favorite.PlaceID] = *favorite
	return nil
}

// ListByUser returns a user's favorites in stable place_id order.
func (s *FavoriteRepoStub) ListByUser(_ context.Context, userID string) ([]models.Favorite, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	byPlace := s.Items[userID]
	placeIDs := make([]string, 0, len(byPlace))
	for placeID := range byPlace {
		placeIDs = append(placeIDs, placeID)
	}
	sort.Strings(placeIDs)
	out := make([]models.Favorite, 0, len(placeIDs))
	for _, placeID := range placeIDs {
		out = append(out, byPlace[placeID])
	}
	return out, nil
}

// Delete removes the pair; deleting a missing pair succeeds.
func (s *FavoriteRepoStub) Delete(_ context.Context, userID, placeID string) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	delete(s.Items[userID], placeID)
	return nil
}

// TinyPNG renders a solid-color PNG of the given dimensions.
func TinyPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// TinyPNGBase64 renders a solid-color PNG and base64-encodes it the way the
// upload endpoint expects.
func TinyPNGBase64(t *testing.T, width, height int) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString(TinyPNG(t, width, height))
}
