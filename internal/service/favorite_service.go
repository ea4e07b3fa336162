package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"platefinder/internal/middleware"
	"platefinder/internal/models"
	"platefinder/internal/repository"
)

// FavoriteService stores bookmarked restaurants as verbatim blobs of the
// external API record.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo}
}

// Add upserts a favorite. The restaurant record must carry a place_id; the
// full record is serialized and stored verbatim, replacing any previous blob
// for the same (user, place) pair.
func (s *FavoriteService) Add(ctx context.Context, userID string, restaurant map[string]interface{}) error {
	if userID == "" {
		userID = models.AnonymousUserID
	}

	placeID, ok := restaurant["place_id"].(string)
	if !ok || placeID == "" {
		return models.NewValidationError("Invalid restaurant data")
	}

	data, err := json.Marshal(restaurant)
	if err != nil {
		return models.NewInternalError(err)
	}

	return s.favoriteRepo.Upsert(ctx, &models.Favorite{
		UserID:         userID,
		PlaceID:        placeID,
		RestaurantData: string(data),
	})
}

// List returns the deserialized restaurant records for a user. Rows with
// malformed blobs are logged and skipped rather than failing the listing.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]map[string]interface{}, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	restaurants := make([]map[string]interface{}, 0, len(favorites))
	for _, favorite := range favorites {
		var restaurant map[string]interface{}
		if err := json.Unmarshal([]byte(favorite.RestaurantData), &restaurant); err != nil {
			middleware.Logger.WarnContext(ctx, "Skipping favorite with malformed restaurant data",
				slog.String("user_id", favorite.UserID),
				slog.String("place_id", favorite.PlaceID),
				slog.String("error", err.Error()),
			)
			continue
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, nil
}

// Remove deletes one favorite; removing a pair that never existed succeeds.
func (s *FavoriteService) Remove(ctx context.Context, userID, placeID string) error {
	return s.favoriteRepo.Delete(ctx, userID, placeID)
}
