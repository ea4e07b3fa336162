package service

import (
	"context"
	"errors"
	"testing"

	"platefinder/internal/models"
	"platefinder/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileServiceSave(t *testing.T) {
	repo := testutil.NewProfileRepoStub()
	svc := NewProfileService(repo)
	ctx := context.Background()

	err := svc.Save(ctx, SaveProfileInput{
		UserID:      "alice",
		Residence:   "Lisbon",
		Age:         31,
		Gender:      "female",
		Preferences: []string{"Italian", "Sushi"},
	})
	require.NoError(t, err)

	view, err := svc.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", view.Residence)
	assert.Equal(t, []string{"Italian", "Sushi"}, view.Preferences)
}

func TestProfileServiceSaveDefaultsAnonymousUser(t *testing.T) {
	repo := testutil.NewProfileRepoStub()
	svc := NewProfileService(repo)

	require.NoError(t, svc.Save(context.Background(), SaveProfileInput{Residence: "Nowhere"}))
	assert.Contains(t, repo.Profiles, models.AnonymousUserID)
}

func TestProfileServiceGetPreferencesNeverNil(t *testing.T) {
	repo := testutil.NewProfileRepoStub()
	svc := NewProfileService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, SaveProfileInput{UserID: "bob"}))

	view, err := svc.Get(ctx, "bob")
	require.NoError(t, err)
	assert.NotNil(t, view.Preferences)
	assert.Empty(t, view.Preferences)
}

func TestProfileServiceGetMissing(t *testing.T) {
	svc := NewProfileService(testutil.NewProfileRepoStub())

	_, err := svc.Get(context.Background(), "nobody")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
