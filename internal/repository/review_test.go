package repository

import (
	"context"
	"testing"
	"time"

	"platefinder/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestReviewRepository_ListLatest_SQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "restaurant_id", "rating", "review_text", "created_at", "user_location"}).
		AddRow(2, "alice", "place-2", 5, "great", now, "Lisbon").
		AddRow(1, "ghost", "place-1", 3, "fine", now.Add(-time.Hour), nil)
	mock.ExpectQuery(`SELECT reviews\.\*, user_profiles\.residence AS user_location FROM reviews LEFT JOIN user_profiles`).
		WillReturnRows(rows)

	reviews, err := repo.ListLatest(ctx, 50)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Lisbon", reviews[0].UserLocation)
	// Reviewers without a profile row still appear, location blank.
	assert.Equal(t, "", reviews[1].UserLocation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	profileRepo := NewProfileRepository(db)
	ctx := context.Background()

	require.NoError(t, profileRepo.Upsert(ctx, &models.UserProfile{
		UserID:    "alice",
		Residence: "Lisbon",
	}, nil))

	base := time.Now().UTC().Add(-time.Hour)
	for i, r := range []models.Review{
		{UserID: "alice", RestaurantID: "place-1", Rating: 4, ReviewText: "solid"},
		{UserID: "ghost", RestaurantID: "place-2", Rating: 2, ReviewText: "meh"},
		{UserID: "alice", RestaurantID: "place-3", Rating: 5, ReviewText: "superb"},
	} {
		review := r
		review.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, &review))
	}

	t.Run("NewestFirstWithJoinedResidence", func(t *testing.T) {
		reviews, err := repo.ListLatest(ctx, 50)
		require.NoError(t, err)
		require.Len(t, reviews, 3)

		assert.Equal(t, "place-3", reviews[0].RestaurantID)
		assert.Equal(t, "Lisbon", reviews[0].UserLocation)
		assert.Equal(t, "place-2", reviews[1].RestaurantID)
		assert.Equal(t, "", reviews[1].UserLocation)
		assert.Equal(t, "place-1", reviews[2].RestaurantID)
	})

	t.Run("LimitApplies", func(t *testing.T) {
		reviews, err := repo.ListLatest(ctx, 2)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, "place-3", reviews[0].RestaurantID)
	})
}

func TestReviewRepositoryListLatestEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)

	// Zero rows must come back as an empty slice so the handler renders a
	// JSON array, never null.
	reviews, err := repo.ListLatest(context.Background(), 50)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}
