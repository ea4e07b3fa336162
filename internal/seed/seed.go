// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"platefinder/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumReviews  int
	ShouldClean bool
}

var (
	cuisines = []string{
		"Italian", "Japanese", "Mexican", "Thai", "Indian", "French",
		"Korean", "Vietnamese", "Greek", "Spanish", "Chinese", "Ethiopian",
		"Peruvian", "Turkish", "Lebanese", "Brazilian", "Vegan", "Seafood",
		"Steakhouse", "Ramen", "Sushi", "BBQ", "Tapas", "Brunch",
	}

	courseTypes = []string{"dinner", "lunch", "tasting menu", "chef's counter", "omakase"}

	reviewOpeners = []string{
		"Absolutely loved the", "Came back twice for the", "Can't stop thinking about the",
		"Was pleasantly surprised by the", "A bit underwhelmed by the", "Blown away by the",
	}

	reviewSubjects = []string{
		"tasting menu", "house special", "service", "atmosphere", "wine pairing",
		"dessert selection", "lunch set", "seasonal menu", "signature dish",
	}
)

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d reviews...", opts.NumUsers, opts.NumReviews)

	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := createProfiles(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create profiles: %w", err)
	}
	log.Printf("✓ %d test profiles created", len(users))

	if err := createReviews(db, users, opts.NumReviews); err != nil {
		return fmt.Errorf("failed to create reviews: %w", err)
	}
	log.Printf("✓ %d reviews created", opts.NumReviews)

	if err := createReservations(db, users); err != nil {
		return fmt.Errorf("failed to create reservations: %w", err)
	}
	log.Println("✓ reservations created")

	if err := createFavorites(db, users); err != nil {
		return fmt.Errorf("failed to create favorites: %w", err)
	}
	log.Println("✓ favorites created")

	return nil
}

func clearData(db *gorm.DB) error {
	// Child rows first so foreign key ordering never bites on Postgres.
	for _, table := range []string{"favorites", "reservations", "reviews", "user_preferences", "user_profiles"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func createProfiles(db *gorm.DB, count int) ([]models.UserProfile, error) {
	profiles := make([]models.UserProfile, 0, count)

	for i := 0; i < count; i++ {
		profile := models.UserProfile{
			UserID:    gofakeit.Username(),
			Residence: gofakeit.City(),
			Age:       gofakeit.Number(18, 75),
			Gender:    gofakeit.Gender(),
		}
		if err := db.Create(&profile).Error; err != nil {
			return nil, err
		}

		prefs := pickCuisines(rand.Intn(4) + 1)
		for _, p := range prefs {
			pref := models.UserPreference{UserID: profile.UserID, Preference: p}
			if err := db.Create(&pref).Error; err != nil {
				return nil, err
			}
		}

		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func createReviews(db *gorm.DB, users []models.UserProfile, count int) error {
	for i := 0; i < count; i++ {
		user := users[rand.Intn(len(users))]
		review := models.Review{
			UserID:       user.UserID,
			RestaurantID: fakePlaceID(),
			Rating:       gofakeit.Number(1, 5),
			ReviewText:   fakeReviewText(),
		}
		if err := db.Create(&review).Error; err != nil {
			return err
		}
	}
	return nil
}

func createReservations(db *gorm.DB, users []models.UserProfile) error {
	for _, user := range users {
		n := rand.Intn(3)
		for i := 0; i < n; i++ {
			date := time.Now().AddDate(0, 0, rand.Intn(30)+1)
			reservation := models.Reservation{
				UserID:          user.UserID,
				RestaurantID:    fakePlaceID(),
				ReservationDate: date.Format("2006-01-02"),
				ReservationTime: fmt.Sprintf("%02d:%02d", rand.Intn(5)+17, []int{0, 15, 30, 45}[rand.Intn(4)]),
				NumberOfPeople:  gofakeit.Number(1, 8),
				CourseType:      courseTypes[rand.Intn(len(courseTypes))],
				Notes:           gofakeit.Sentence(6),
			}
			if err := db.Create(&reservation).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func createFavorites(db *gorm.DB, users []models.UserProfile) error {
	for _, user := range users {
		n := rand.Intn(4)
		for i := 0; i < n; i++ {
			placeID := fakePlaceID()
			blob, err := json.Marshal(map[string]interface{}{
				"place_id": placeID,
				"name":     fakeRestaurantName(),
				"address":  gofakeit.Address().Address,
				"rating":   float64(gofakeit.Number(25, 50)) / 10,
			})
			if err != nil {
				return err
			}
			favorite := models.Favorite{
				UserID:         user.UserID,
				PlaceID:        placeID,
				RestaurantData: string(blob),
			}
			if err := db.Create(&favorite).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func pickCuisines(n int) []string {
	picked := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for len(picked) < n {
		c := cuisines[rand.Intn(len(cuisines))]
		if !seen[c] {
			seen[c] = true
			picked = append(picked, c)
		}
	}
	return picked
}

func fakePlaceID() string {
	return "ChIJ" + uuid.NewString()[:24]
}

func fakeRestaurantName() string {
	return fmt.Sprintf("%s %s", gofakeit.LastName(), []string{"Kitchen", "Bistro", "Trattoria", "Diner", "Izakaya", "Cantina", "Grill"}[rand.Intn(7)])
}

func fakeReviewText() string {
	return fmt.Sprintf("%s %s. %s",
		reviewOpeners[rand.Intn(len(reviewOpeners))],
		reviewSubjects[rand.Intn(len(reviewSubjects))],
		gofakeit.Sentence(8))
}
