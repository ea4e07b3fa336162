package database

import (
	"testing"

	"platefinder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func TestEnsureProfileColumnsCreatesMissingTable(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, EnsureProfileColumns(db))

	migrator := db.Migrator()
	assert.True(t, migrator.HasTable(&models.UserProfile{}))
	assert.True(t, migrator.HasColumn(&models.UserProfile{}, "ProfileImageURL"))
	assert.True(t, migrator.HasColumn(&models.UserProfile{}, "FollowersCount"))
	assert.True(t, migrator.HasColumn(&models.UserProfile{}, "FollowingCount"))
}

func TestEnsureProfileColumnsAddsMissingColumns(t *testing.T) {
	db := openTestDB(t)

	// A legacy deployment's table: base columns only.
	require.NoError(t, db.Exec(`CREATE TABLE user_profiles (
		user_id text PRIMARY KEY,
		residence text,
		age integer,
		gender text,
		created_at datetime,
		updated_at datetime
	)`).Error)

	require.NoError(t, EnsureProfileColumns(db))

	migrator := db.Migrator()
	assert.True(t, migrator.HasColumn(&models.UserProfile{}, "ProfileImageURL"))
	assert.True(t, migrator.HasColumn(&models.UserProfile{}, "FollowersCount"))
	assert.True(t, migrator.HasColumn(&models.UserProfile{}, "FollowingCount"))

	// Existing rows must survive the bootstrap.
	require.NoError(t, db.Exec(`INSERT INTO user_profiles (user_id, residence) VALUES ('alice', 'Lisbon')`).Error)
	var profile models.UserProfile
	require.NoError(t, db.First(&profile, "user_id = ?", "alice").Error)
	assert.Equal(t, "Lisbon", profile.Residence)
	assert.Equal(t, "", profile.ProfileImageURL)
}

func TestEnsureProfileColumnsIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, EnsureProfileColumns(db))
	assert.NoError(t, EnsureProfileColumns(db))
	assert.NoError(t, EnsureProfileColumns(db))
}
