// Package service contains the domain services sitting between handlers and
// the data access layer.
package service

import (
	"context"

	"platefinder/internal/models"
	"platefinder/internal/repository"
)

// ProfileService handles profile upserts and reads.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// SaveProfileInput is the payload for a profile save. A missing UserID
// defaults to the anonymous sentinel; other fields are stored as submitted.
type SaveProfileInput struct {
	UserID      string
	Residence   string
	Age         int
	Gender      string
	Preferences []string
}

// ProfileView is a profile with its preference set attached.
type ProfileView struct {
	models.UserProfile
	Preferences []string `json:"preferences"`
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// Save upserts the profile and replaces the full preference set.
func (s *ProfileService) Save(ctx context.Context, in SaveProfileInput) error {
	userID := in.UserID
	if userID == "" {
		userID = models.AnonymousUserID
	}

	profile := &models.UserProfile{
		UserID:    userID,
		Residence: in.Residence,
		Age:       in.Age,
		Gender:    in.Gender,
	}
	return s.profileRepo.Upsert(ctx, profile, in.Preferences)
}

// Get fetches a profile with its preferences; a missing profile surfaces as
// a NotFoundError.
func (s *ProfileService) Get(ctx context.Context, userID string) (*ProfileView, error) {
	profile, preferences, err := s.profileRepo.GetWithPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	if preferences == nil {
		preferences = []string{}
	}
	return &ProfileView{
		UserProfile: *profile,
		Preferences: preferences,
	}, nil
}
