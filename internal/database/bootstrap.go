package database

import (
	"fmt"
	"log/slog"

	"platefinder/internal/middleware"
	"platefinder/internal/models"

	"gorm.io/gorm"
)

// profileBootstrapColumns are the additive user_profiles columns that older
// deployments may be missing. Field names refer to models.UserProfile.
var profileBootstrapColumns = []string{
	"ProfileImageURL",
	"FollowersCount",
	"FollowingCount",
}

// EnsureProfileColumns makes sure the user_profiles table carries the image
// URL and follower/following count columns. Each column is checked with the
// migrator before being added, so the routine is idempotent and safe to run
// on every startup. The first failure aborts the remaining columns; callers
// log the error and keep the process alive.
func EnsureProfileColumns(db *gorm.DB) error {
	migrator := db.Migrator()

	if !migrator.HasTable(&models.UserProfile{}) {
		if err := migrator.CreateTable(&models.UserProfile{}); err != nil {
			return fmt.Errorf("failed to create user_profiles table: %w", err)
		}
		middleware.Logger.Info("Created user_profiles table during schema bootstrap")
		return nil
	}

	for _, field := range profileBootstrapColumns {
		if migrator.HasColumn(&models.UserProfile{}, field) {
			middleware.Logger.Info("Schema bootstrap: column already present",
				slog.String("column", field))
			continue
		}
		if err := migrator.AddColumn(&models.UserProfile{}, field); err != nil {
			return fmt.Errorf("failed to add user_profiles column %s: %w", field, err)
		}
		middleware.Logger.Info("Schema bootstrap: added column",
			slog.String("column", field))
	}

	return nil
}
